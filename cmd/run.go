package cmd

import (
	"time"

	"github.com/spf13/cobra"

	"github.com/harrisonrobin/tasklist/pkg/colors"
	"github.com/harrisonrobin/tasklist/pkg/prompt"
	"github.com/harrisonrobin/tasklist/pkg/render"
	"github.com/harrisonrobin/tasklist/pkg/store"
	"github.com/harrisonrobin/tasklist/pkg/tasklist"
)

func newRunCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "run",
		Short: "Start the interactive session (default)",
		Long: `Start the interactive session. The actions are:

  add     ask for priority, date, time and text, then add the task
  print   show the task table
  edit    change one field of a task
  delete  remove a task
  end     save the list and exit`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSession(cmd, opts)
		},
	}
}

func runSession(cmd *cobra.Command, opts *options) error {
	cfg, err := resolveConfig(opts)
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

	mode, _ := colors.ParseMode(cfg.Color)
	out := cmd.OutOrStdout()
	session := &tasklist.Session{
		Store:  st,
		Repo:   repo,
		Prompt: prompt.New(cmd.InOrStdin(), out),
		Table:  render.NewTable(mode, out),
		Out:    out,
		Now:    time.Now,
	}
	return session.Run(ctx)
}
