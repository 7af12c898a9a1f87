package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var editedBy string

func init() {
	protectCmd.Flags().StringVar(&editedBy, "by", "cli", "who is making the edit")
	unprotectCmd.Flags().StringVar(&editedBy, "by", "cli", "who is making the edit")
	rootCmd.AddCommand(protectCmd)
	rootCmd.AddCommand(unprotectCmd)
}

var protectCmd = &cobra.Command{
	Use:   "protect <event-id>",
	Short: "Marks an event as human-curated; the pipeline will no longer touch its fields.",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		svc := openService()
		err := svc.SetProtected(cmd.Context(), args[0], editedBy, true)
		if err != nil {
			serviceFatal(err)
		}
		fmt.Printf("protected %s\n", args[0])
	},
}

var unprotectCmd = &cobra.Command{
	Use:   "unprotect <event-id>",
	Short: "Returns an event to pipeline control.",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		svc := openService()
		err := svc.SetProtected(cmd.Context(), args[0], editedBy, false)
		if err != nil {
			serviceFatal(err)
		}
		fmt.Printf("unprotected %s\n", args[0])
	},
}
