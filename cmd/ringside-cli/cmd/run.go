package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(runCmd)
}

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Runs one full pipeline pass against the configured sources.",
	Run: func(cmd *cobra.Command, args []string) {
		svc := openService()
		report, err := svc.Run(cmd.Context())
		if err != nil {
			serviceFatal(err)
		}

		fmt.Printf(
			"run %s: %d seen, %d persisted, %d protected skipped\n",
			report.RunID,
			report.EventsSeen,
			report.Persisted,
			report.ProtectedSkipped,
		)
	},
}
