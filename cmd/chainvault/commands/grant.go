package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

var grantCmd = &cobra.Command{
	Use:   "grant <file> <grantee>",
	Short: "Grant another user read access to an owned file",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		session, err := requireLogin()
		if err != nil {
			return err
		}

		if err := svc.GrantPermission(session, args[0], args[1]); err != nil {
			return err
		}
		fmt.Printf("access to %s granted to %s\n", args[0], args[1])
		return nil
	},
}

func init() {
	rootCmd.AddCommand(grantCmd)
}
