package cmd

import (
	"context"
	"os"

	"github.com/spf13/cobra"

	"github.com/harrisonrobin/tasklist/pkg/colors"
	"github.com/harrisonrobin/tasklist/pkg/config"
	"github.com/harrisonrobin/tasklist/pkg/store"
)

// version will be set by main
var version = "dev"

// SetVersion sets the version reported by the version command.
func SetVersion(v string) {
	version = v
}

// options holds the flags shared by every command.
type options struct {
	file    string
	storage string
	color   string
}

func newRootCmd() *cobra.Command {
	opts := &options{}

	rootCmd := &cobra.Command{
		Use:   "tasklist",
		Short: "Keep a dated to-do list in the terminal",
		Long: `tasklist is an interactive to-do list. Add, print, edit and delete
dated tasks at the prompt; the list is saved when you type "end".

Without a subcommand it starts the interactive session.`,
		SilenceUsage: true,
		Version:      version,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSession(cmd, opts)
		},
	}
	rootCmd.SetVersionTemplate(`{{printf "tasklist version %s\n" .Version}}`)

	flags := rootCmd.PersistentFlags()
	flags.StringVar(&opts.file, "file", "", "Task file (default from config, then tasklist.json or tasklist.db)")
	flags.StringVar(&opts.storage, "storage", "", "Storage backend: json or sqlite")
	flags.StringVar(&opts.color, "color", "", "Color the indicator cells: auto, always or never")

	rootCmd.AddCommand(newRunCmd(opts))
	rootCmd.AddCommand(newPrintCmd(opts))
	rootCmd.AddCommand(newSyncCmd(opts))
	rootCmd.AddCommand(newAuthCmd())
	rootCmd.AddCommand(newConfigCmd())
	rootCmd.AddCommand(newVersionCmd())
	return rootCmd
}

// Execute is the main entry point for the CLI application. SIGINT is left
// at its default so Ctrl-C ends the session at once without saving.
func Execute() {
	if err := newRootCmd().ExecuteContext(context.Background()); err != nil {
		os.Exit(1)
	}
}

// resolveConfig applies flag > config file > default.
func resolveConfig(opts *options) (*config.Config, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}
	if opts.storage != "" && opts.storage != cfg.Storage {
		cfg.Storage = opts.storage
		// A file configured for the other backend would be misread.
		cfg.File = ""
	}
	if opts.file != "" {
		cfg.File = opts.file
	}
	if opts.color != "" {
		cfg.Color = opts.color
	}
	if _, err := colors.ParseMode(cfg.Color); err != nil {
		return nil, err
	}
	if err := store.CheckKind(cfg.Storage); err != nil {
		return nil, err
	}
	return cfg, nil
}
