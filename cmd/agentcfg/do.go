package main

import (
	"strings"

	"github.com/spf13/cobra"

	"github.com/joss/agentcfg/internal/domain"
)

func doCmd() *cobra.Command {
	var (
		name        string
		model       string
		temperature float64
		prompt      string
		description string
		hook        string
		index       int
		disable     bool
		enable      bool
	)

	cmd := &cobra.Command{
		Use:   "do <request...>",
		Short: "Run one natural-language request",
		Long: `Interpret a plain-English request and apply it to the opencode
config files. Flags supply explicit parameter values that override
whatever the request text yields, field by field.

Examples:
  agentcfg do add a new agent called debugger with model opencode/gpt-5.2
  agentcfg do set the reviewer agent temperature to 0.2
  agentcfg do disable hook comment-checker
  agentcfg do compare backup 2
  agentcfg do "modify my agent" --name reviewer --temperature 0.4`,
		Args: cobra.MinimumNArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			explicit := domain.Params{
				Name:        name,
				Model:       model,
				Prompt:      prompt,
				Description: description,
				Hook:        hook,
				BackupIndex: index,
			}
			if cmd.Flags().Changed("temperature") {
				explicit.Temperature = &temperature
			}
			if disable {
				t := true
				explicit.Disabled = &t
			} else if enable {
				f := false
				explicit.Disabled = &f
			}

			runRequest(strings.Join(args, " "), explicit)
		},
	}

	cmd.Flags().StringVarP(&name, "name", "n", "", "Entity name (agent or category)")
	cmd.Flags().StringVarP(&model, "model", "m", "", "Model id (provider/model-id)")
	cmd.Flags().Float64VarP(&temperature, "temperature", "t", 0, "Temperature in [0.0, 1.0]")
	cmd.Flags().StringVarP(&prompt, "prompt", "p", "", "Prompt append text")
	cmd.Flags().StringVarP(&description, "description", "d", "", "Entity description")
	cmd.Flags().StringVar(&hook, "hook", "", "Hook name")
	cmd.Flags().IntVarP(&index, "index", "i", 0, "Backup index (1 = most recent)")
	cmd.Flags().BoolVar(&disable, "disable", false, "Disable the named agent")
	cmd.Flags().BoolVar(&enable, "enable", false, "Enable the named agent")
	cmd.MarkFlagsMutuallyExclusive("disable", "enable")

	return cmd
}
