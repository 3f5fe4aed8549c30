package cmd

import (
	"time"

	"github.com/spf13/cobra"

	"github.com/harrisonrobin/tasklist/pkg/colors"
	"github.com/harrisonrobin/tasklist/pkg/render"
	"github.com/harrisonrobin/tasklist/pkg/store"
	"github.com/harrisonrobin/tasklist/pkg/tasklist"
)

func newPrintCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "print",
		Short: "Print the task table and exit",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := resolveConfig(opts)
			if err != nil {
				return err
			}
			repo, err := store.Open(cfg.Storage, cfg.DataFile())
			if err != nil {
				return err
			}
			defer repo.Close()

			st, err := tasklist.Load(cmd.Context(), repo, time.Now())
			if err != nil {
				return err
			}
			mode, _ := colors.ParseMode(cfg.Color)
			out := cmd.OutOrStdout()
			return render.NewTable(mode, out).Render(out, st.Tasks())
		},
	}
}
