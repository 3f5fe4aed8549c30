package cmd

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/harrisonrobin/tasklist/pkg/colors"
	"github.com/harrisonrobin/tasklist/pkg/config"
	"github.com/harrisonrobin/tasklist/pkg/store"
)

func newConfigCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Show or change the saved settings",
	}
	cmd.AddCommand(newConfigShowCmd())
	cmd.AddCommand(newConfigSetCmd())
	return cmd
}

func newConfigShowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Print the effective settings",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}
			encoder := json.NewEncoder(cmd.OutOrStdout())
			encoder.SetIndent("", "  ")
			return encoder.Encode(cfg)
		},
	}
}

func newConfigSetCmd() *cobra.Command {
	var next config.Config

	cmd := &cobra.Command{
		Use:   "set",
		Short: "Save default settings",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}
			flags := cmd.Flags()
			if flags.Changed("calendar") {
				cfg.Calendar = next.Calendar
			}
			if flags.Changed("storage") {
				if err := store.CheckKind(next.Storage); err != nil {
					return err
				}
				cfg.Storage = next.Storage
			}
			if flags.Changed("file") {
				cfg.File = next.File
			}
			if flags.Changed("color") {
				if _, err := colors.ParseMode(next.Color); err != nil {
					return err
				}
				cfg.Color = next.Color
			}
			if flags.Changed("timezone") {
				cfg.Timezone = next.Timezone
				if _, err := cfg.Location(); err != nil {
					return err
				}
			}
			if err := config.Save(cfg); err != nil {
				return fmt.Errorf("error saving config: %w", err)
			}
			fmt.Fprintln(cmd.OutOrStdout(), "Settings saved")
			return nil
		},
	}

	f := cmd.Flags()
	f.StringVar(&next.Calendar, "calendar", "", "Default Google Calendar name")
	f.StringVar(&next.Storage, "storage", "", "Storage backend: json or sqlite")
	f.StringVar(&next.File, "file", "", "Task file path")
	f.StringVar(&next.Color, "color", "", "Color mode: auto, always or never")
	f.StringVar(&next.Timezone, "timezone", "", "IANA time zone used for calendar events")
	return cmd
}
