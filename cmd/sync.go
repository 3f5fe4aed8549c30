package cmd

import (
	"fmt"
	"log"
	"time"

	"github.com/spf13/cobra"

	"github.com/harrisonrobin/tasklist/pkg/google"
	"github.com/harrisonrobin/tasklist/pkg/index"
	"github.com/harrisonrobin/tasklist/pkg/model"
	"github.com/harrisonrobin/tasklist/pkg/overdue"
	"github.com/harrisonrobin/tasklist/pkg/store"
	"github.com/harrisonrobin/tasklist/pkg/tasklist"
)

func newSyncCmd(opts *options) *cobra.Command {
	var calendarName string

	cmd := &cobra.Command{
		Use:   "sync",
		Short: "Mirror the task list into a Google Calendar",
		Long: `Create or update one calendar event per task and delete the events of
tasks that were removed from the list. Run "tasklist auth" first.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := resolveConfig(opts)
			if err != nil {
				return err
			}
			if calendarName != "" {
				cfg.Calendar = calendarName
			}
			loc, err := cfg.Location()
			if err != nil {
				return err
			}
			ctx := cmd.Context()

			repo, err := store.Open(cfg.Storage, cfg.DataFile())
			if err != nil {
				return err
			}
			defer repo.Close()

			st, err := tasklist.Load(ctx, repo, time.Now())
			if err != nil {
				return err
			}
			tasks := st.Tasks()
			if n := len(overdue.Filter(tasks, model.Overdue)); n > 0 {
				log.Printf("%d overdue task(s) will be marked with '!'", n)
			}

			idx, err := index.NewEventIndex()
			if err != nil {
				log.Printf("Warning: failed to initialize event index: %v", err)
				idx = nil
			}

			client, err := google.NewClient(ctx, cfg.Calendar, idx, loc)
			if err != nil {
				return fmt.Errorf("error creating Google Calendar client: %w", err)
			}
			res, err := client.Mirror(ctx, tasks)
			if idx != nil {
				if saveErr := idx.Save(); saveErr != nil {
					log.Printf("Warning: failed to save event index: %v", saveErr)
				}
			}
			if err != nil {
				return err
			}

			// Loading may have assigned IDs to legacy tasks; keep them so the
			// next sync finds the same events.
			if err := repo.Save(ctx, tasks); err != nil {
				return fmt.Errorf("failed to save tasks: %w", err)
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Synced to %q: %d created, %d updated, %d unchanged, %d deleted, %d failed\n",
				cfg.Calendar, res.Created, res.Updated, res.Unchanged, res.Deleted, res.Failed)
			if res.Failed > 0 {
				return fmt.Errorf("%d calendar operation(s) failed", res.Failed)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&calendarName, "calendar", "", "Google Calendar name to sync with (overrides config)")
	return cmd
}
