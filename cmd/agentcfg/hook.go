package main

import (
	"fmt"
	"slices"

	"github.com/spf13/cobra"

	"github.com/joss/agentcfg/internal/config"
	"github.com/joss/agentcfg/internal/domain"
	"github.com/joss/agentcfg/internal/hooks"
	"github.com/joss/agentcfg/internal/render"
	"github.com/joss/agentcfg/internal/store"
)

func hookCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "hook",
		Short: "Toggle host assistant hooks",
		Long: `Enable or disable named hooks of the host assistant. Disabled
hooks are recorded in the agent config's disabledHooks list; only
names from the built-in registry are accepted.`,
	}

	cmd.AddCommand(
		&cobra.Command{
			Use:   "disable <name>",
			Short: "Disable a hook",
			Args:  cobra.ExactArgs(1),
			Run: func(cmd *cobra.Command, args []string) {
				runRequest("disable hook", domain.Params{Hook: args[0]})
			},
		},
		&cobra.Command{
			Use:   "enable <name>",
			Short: "Enable a previously disabled hook",
			Args:  cobra.ExactArgs(1),
			Run: func(cmd *cobra.Command, args []string) {
				runRequest("enable hook", domain.Params{Hook: args[0]})
			},
		},
		hookListCmd(),
	)

	return cmd
}

func hookListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List known hooks and their state",
		Run: func(cmd *cobra.Command, args []string) {
			paths := config.GetPaths()
			agentDoc, err := store.New(paths.AgentFile, paths.ProviderFile, log).LoadAgent()
			if err != nil {
				exitOnError(err)
			}
			disabled, _ := agentDoc.StringsField(domain.FieldDisabledHooks)

			w := render.Stdout()
			w.Header("KNOWN HOOKS (%d)", len(hooks.Names()))
			for _, name := range hooks.Names() {
				state := "enabled"
				icon := render.StatusIcon("success")
				if slices.Contains(disabled, name) {
					state = "disabled"
					icon = render.StatusIcon("error")
				}
				w.Item("%s %-22s %-9s %s", icon, name, state, hooks.Describe(name))
			}
			if len(disabled) > 0 {
				w.Line()
				fmt.Printf("%d disabled\n", len(disabled))
			}
		},
	}
}
