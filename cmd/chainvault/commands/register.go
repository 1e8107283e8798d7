package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

var registerCmd = &cobra.Command{
	Use:   "register <username> <password>",
	Short: "Create a new user",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := svc.Register(args[0], args[1]); err != nil {
			return err
		}
		fmt.Printf("user %s registered\n", args[0])
		return nil
	},
}

func init() {
	rootCmd.AddCommand(registerCmd)
}
