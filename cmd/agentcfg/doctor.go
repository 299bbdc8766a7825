package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/joss/agentcfg/internal/config"
	"github.com/joss/agentcfg/internal/selftest"
)

func doctorCmd() *cobra.Command {
	var quick bool

	cmd := &cobra.Command{
		Use:   "doctor",
		Short: "Check config health",
		Long: `Diagnose the opencode configuration environment.

Checks:
  - Both config files parse
  - Entry keys pass the safe-identifier rule
  - Temperatures and topP values are in range
  - disabledHooks entries are known hooks
  - Model references resolve against the provider config
  - The backup directory is writable

All checks are local; nothing is fetched from the network.`,
		Run: func(cmd *cobra.Command, args []string) {
			env := selftest.Check(*config.GetPaths())

			if quick {
				fmt.Println(env.QuickCheck())
			} else {
				fmt.Print(env.Summary())
			}

			if !env.IsHealthy() {
				os.Exit(1)
			}
		},
	}

	cmd.Flags().BoolVarP(&quick, "quick", "q", false, "One-line pass/fail summary")
	return cmd
}
