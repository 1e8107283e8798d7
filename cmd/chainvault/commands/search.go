package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

var searchCmd = &cobra.Command{
	Use:   "search <keyword>...",
	Short: "Find files whose name or content contains any keyword",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		for _, name := range svc.Search(args) {
			fmt.Println(name)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(searchCmd)
}
