package cmd

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"wordplay/internal/app"
	"wordplay/internal/config"
	"wordplay/internal/logging"
	"wordplay/internal/ports"
)

var (
	storePath   string
	storeDriver string
	logLevel    string
	instance    *app.App
)

var rootCmd = &cobra.Command{
	Use:   "wordplay-cli",
	Short: "CLI for managing an English practice question bank",
	Long: `wordplay-cli manages a bank of English practice questions organized
in a tree of folders.

It provides commands to create and arrange folders, add and edit questions,
bulk import JSON or YAML documents, and build playlists from any subtree.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		// Skip initialization for help commands
		if cmd.Name() == "help" || cmd.Name() == "completion" || cmd.Name() == "example" {
			return nil
		}

		cfg, err := config.Load()
		if err != nil {
			return err
		}
		if storePath != "" {
			cfg.Store.Path = storePath
		}
		if storeDriver != "" {
			cfg.Store.Driver = storeDriver
		}
		if logLevel != "" {
			cfg.Log.Level = logLevel
		}
		if err := cfg.Validate(); err != nil {
			return err
		}

		instance, err = app.Open(cfg, logging.New(cfg.Log))
		return err
	},
}

// Execute runs the root command
func Execute() {
	if err := run(os.Args[1:]); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// run executes args and closes the store, also when the command failed
func run(args []string) error {
	rootCmd.SetArgs(args)
	err := rootCmd.Execute()
	return errors.Join(err, closeInstance())
}

func closeInstance() error {
	if instance == nil {
		return nil
	}
	err := instance.Close()
	instance = nil
	return err
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&storePath, "store", "s", "", "path to the question bank (default from config)")
	rootCmd.PersistentFlags().StringVar(&storeDriver, "driver", "", "store driver: sqlite, file or memory")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "log level: debug, info, warn or error")
}

// GetBank returns the initialized question bank
func GetBank() ports.QuestionBank {
	return instance.Bank
}
