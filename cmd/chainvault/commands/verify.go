package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

var verifyCmd = &cobra.Command{
	Use:   "verify",
	Short: "Re-validate the live chain from genesis",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := svc.VerifyIntegrity(); err != nil {
			return err
		}
		fmt.Println("chain intact")
		return nil
	},
}

func init() {
	rootCmd.AddCommand(verifyCmd)
}
