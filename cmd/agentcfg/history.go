package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/joss/agentcfg/internal/render"
)

func historyCmd() *cobra.Command {
	var (
		limit int
		stats bool
	)

	cmd := &cobra.Command{
		Use:   "history",
		Short: "Show recent requests",
		Long:  "List the most recent executed requests and their outcomes.",
		Run: func(cmd *cobra.Command, args []string) {
			if history == nil {
				fmt.Fprintln(os.Stderr, "Error: request history is unavailable")
				os.Exit(1)
			}

			ctx := context.Background()
			events, err := history.Recent(ctx, limit)
			if err != nil {
				exitOnError(err)
			}

			h := render.NewHistory()
			h.Events(events)

			if stats {
				st, err := history.ReadStats(ctx)
				if err != nil {
					exitOnError(err)
				}
				h.Stats(st)
			}
		},
	}

	cmd.Flags().IntVarP(&limit, "limit", "n", 20, "Number of entries to show")
	cmd.Flags().BoolVarP(&stats, "stats", "s", false, "Append aggregate outcome counts")
	return cmd
}
