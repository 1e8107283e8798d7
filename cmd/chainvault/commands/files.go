package commands

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var addCmd = &cobra.Command{
	Use:   "add <file>",
	Short: "Store a file in the chain, owned by the caller",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		session, err := requireLogin()
		if err != nil {
			return err
		}

		content, err := os.ReadFile(args[0])
		if err != nil {
			return fmt.Errorf("read %s: %w", args[0], err)
		}

		if err := svc.AddFile(session, args[0], content); err != nil {
			return err
		}
		fmt.Printf("added %s (%d bytes)\n", args[0], len(content))
		return nil
	},
}

var getCmd = &cobra.Command{
	Use:   "get <file> [output]",
	Short: "Retrieve a stored file (stdout if no output path)",
	Args:  cobra.RangeArgs(1, 2),
	RunE: func(cmd *cobra.Command, args []string) error {
		session, err := requireLogin()
		if err != nil {
			return err
		}

		content, err := svc.GetFile(session, args[0])
		if err != nil {
			return err
		}

		if len(args) == 2 {
			if err := os.WriteFile(args[1], content, 0600); err != nil {
				return fmt.Errorf("write %s: %w", args[1], err)
			}
			fmt.Printf("saved %s to %s\n", args[0], args[1])
			return nil
		}

		_, err = os.Stdout.Write(content)
		return err
	},
}

var getAllCmd = &cobra.Command{
	Use:   "get-all",
	Short: "List every file the caller owns or is granted",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		session, err := requireLogin()
		if err != nil {
			return err
		}

		names, err := svc.GetAll(session)
		if err != nil {
			return err
		}
		for _, name := range names {
			fmt.Println(name)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(addCmd)
	rootCmd.AddCommand(getCmd)
	rootCmd.AddCommand(getAllCmd)
}
