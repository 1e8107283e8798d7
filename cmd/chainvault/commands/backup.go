package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

var backupCmd = &cobra.Command{
	Use:   "backup <name>",
	Short: "Persist the full chain to durable storage",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := svc.Backup(args[0]); err != nil {
			return err
		}
		fmt.Printf("backup %s written\n", args[0])
		return nil
	},
}

var loadCmd = &cobra.Command{
	Use:   "load <name>",
	Short: "Restore and re-validate a stored backup",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := svc.LoadBackup(args[0]); err != nil {
			return err
		}
		fmt.Printf("backup %s loaded\n", args[0])
		return nil
	},
}

var backupsCmd = &cobra.Command{
	Use:   "backups",
	Short: "List stored backups",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		names, err := svc.ListBackups()
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
	rootCmd.AddCommand(backupCmd)
	rootCmd.AddCommand(loadCmd)
	rootCmd.AddCommand(backupsCmd)
}
