package main

import (
	"github.com/spf13/cobra"

	"github.com/joss/agentcfg/internal/domain"
)

func permissionsCmd() *cobra.Command {
	var agent string

	cmd := &cobra.Command{
		Use:     "permissions",
		Aliases: []string{"perms"},
		Short:   "Show tool permissions",
		Long: `Show the global tool permission map from the provider config, or
one agent's permission overrides with --agent.`,
		Run: func(cmd *cobra.Command, args []string) {
			runRequest("show permissions", domain.Params{Name: agent})
		},
	}

	cmd.Flags().StringVarP(&agent, "agent", "a", "", "Show one agent's permission overrides")
	return cmd
}
