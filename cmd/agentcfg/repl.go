package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/joss/agentcfg/internal/domain"
	"github.com/joss/agentcfg/internal/tui"
)

func replCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "repl",
		Short: "Interactive request loop",
		Long: `Start an interactive prompt that runs one natural-language request
per line. Type 'exit' or press ctrl+d to leave.`,
		Run: func(cmd *cobra.Command, args []string) {
			if !term.IsTerminal(int(os.Stdin.Fd())) {
				fmt.Fprintln(os.Stderr, "Error: repl needs a terminal; pipe requests through 'agentcfg do' instead")
				os.Exit(1)
			}

			run := func(request string) (string, error) {
				return execute(request, domain.Params{})
			}
			if err := tui.Run(run); err != nil {
				exitOnError(err)
			}
		},
	}
}
