// Package commands implements the chainvault CLI. Commands parse
// arguments and render results; all semantics live in the vault package.
package commands

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/DisDoh/chainvault-go/auth"
	"github.com/DisDoh/chainvault-go/config"
	"github.com/DisDoh/chainvault-go/vault"
)

var (
	dataDir  string
	username string
	password string
	loadName string
	saveName string

	svc *vault.Service
)

var rootCmd = &cobra.Command{
	Use:           "chainvault",
	Short:         "Tamper-evident backup store on a local hash chain",
	SilenceUsage:  true,
	SilenceErrors: false,

	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}

		level, err := zerolog.ParseLevel(cfg.LogLevel)
		if err != nil {
			level = zerolog.InfoLevel
		}
		log := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).
			Level(level).
			With().Timestamp().Logger()

		svc, err = vault.Open(cfg, vault.WithLogger(log))
		if err != nil {
			return fmt.Errorf("initialize vault: %w", err)
		}

		// Each invocation starts from a fresh genesis; --load resumes
		// from a stored backup.
		if loadName != "" {
			if err := svc.LoadBackup(loadName); err != nil {
				return err
			}
		}
		return nil
	},

	// Runs only after a successful command.
	PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
		if svc == nil {
			return nil
		}
		if saveName != "" {
			if err := svc.Backup(saveName); err != nil {
				_ = svc.Close()
				return err
			}
		}
		return svc.Close()
	},
}

// Execute runs the CLI.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&dataDir, "data-dir", "", "data directory (default $HOME/.chainvault)")
	rootCmd.PersistentFlags().StringVarP(&username, "user", "u", "", "username for authenticated commands")
	rootCmd.PersistentFlags().StringVarP(&password, "password", "p", "", "password for authenticated commands")
	rootCmd.PersistentFlags().StringVar(&loadName, "load", "", "load this backup before running the command")
	rootCmd.PersistentFlags().StringVar(&saveName, "save", "", "write this backup after the command succeeds")
}

// loadConfig reads {data-dir}/config.yaml, falling back to defaults
// when the file does not exist.
func loadConfig() (config.Config, error) {
	dir := dataDir
	if dir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return config.Config{}, fmt.Errorf("resolve home directory: %w", err)
		}
		dir = filepath.Join(home, ".chainvault")
	}

	path := config.ConfigPath(dir)
	if _, err := os.Stat(path); err != nil {
		if os.IsNotExist(err) {
			return config.DefaultConfig(dir), nil
		}
		return config.Config{}, err
	}
	return config.LoadConfig(path)
}

// requireLogin authenticates the --user/--password pair for commands
// that operate on files.
func requireLogin() (*auth.Session, error) {
	if username == "" {
		return nil, fmt.Errorf("--user is required for this command")
	}
	session, err := svc.Login(username, password)
	if err != nil {
		return nil, err
	}
	return session, nil
}
