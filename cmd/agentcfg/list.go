package main

import (
	"github.com/spf13/cobra"

	"github.com/joss/agentcfg/internal/domain"
)

func listCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List configured entities",
		Long:  "List agents, categories, installed skills or provider models.",
	}

	cmd.AddCommand(
		&cobra.Command{
			Use:   "agents",
			Short: "List configured agents",
			Run: func(cmd *cobra.Command, args []string) {
				runRequest("list agents", domain.Params{})
			},
		},
		&cobra.Command{
			Use:   "categories",
			Short: "List configured categories",
			Run: func(cmd *cobra.Command, args []string) {
				runRequest("list categories", domain.Params{})
			},
		},
		&cobra.Command{
			Use:   "skills",
			Short: "List installed skills",
			Run: func(cmd *cobra.Command, args []string) {
				runRequest("list skills", domain.Params{})
			},
		},
		&cobra.Command{
			Use:   "models",
			Short: "List provider models",
			Run: func(cmd *cobra.Command, args []string) {
				runRequest("list models", domain.Params{})
			},
		},
	)

	return cmd
}
