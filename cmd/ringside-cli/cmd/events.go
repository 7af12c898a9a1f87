package cmd

import (
	"fmt"
	"os"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(eventsCmd)
}

func serviceFatal(err error) {
	fmt.Fprintln(os.Stderr, err.Error())
	os.Exit(1)
}

var eventsCmd = &cobra.Command{
	Use:   "events",
	Short: "Prints the stored canonical events.",
	Run: func(cmd *cobra.Command, args []string) {
		svc := openService()
		list, err := svc.List(cmd.Context())
		if err != nil {
			serviceFatal(err)
		}

		t := table.NewWriter()
		t.SetOutputMirror(os.Stdout)
		t.AppendHeader(table.Row{"Id", "Promotion", "Date", "Name", "Kind", "Matches", "Protected"})

		for _, ev := range list {
			kind := "special"
			if ev.IsPeriodicBroadcast {
				kind = "broadcast"
			}
			t.AppendRow(table.Row{
				ev.ID,
				ev.PromotionName,
				ev.Date,
				ev.Name,
				kind,
				len(ev.Matches),
				ev.Protected,
			})
		}

		t.SetStyle(table.StyleRounded)
		t.Render()
	},
}
