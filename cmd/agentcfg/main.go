// Package main provides the agentcfg CLI entrypoint.
package main

import (
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/term"

	"github.com/joss/agentcfg/internal/audit"
	"github.com/joss/agentcfg/internal/config"
	"github.com/joss/agentcfg/internal/logging"
)

var (
	version = "0.1.0"

	log      = zap.NewNop()
	history  *audit.Store
	recorder *audit.Recorder
)

func main() {
	var (
		verbose   bool
		configDir string
		noColor   bool
	)

	rootCmd := &cobra.Command{
		Use:   "agentcfg",
		Short: "Natural-language editor for opencode config files",
		Long: `agentcfg reads and safely mutates the opencode agent/category and
provider/model config files from plain-English requests.

Usage modes:
  agentcfg do <request...>   Run one natural-language request
  agentcfg <command>         Run a specific action directly (see below)
  agentcfg repl              Interactive request loop

Every mutation is preceded by a timestamped backup of both config
files; 'agentcfg backup list' shows the archive.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			// Flag overrides land in the environment so the config
			// singleton resolves them like any other setting.
			if configDir != "" {
				os.Setenv("AGENTCFG_CONFIG_DIR", configDir)
			}
			if noColor {
				os.Setenv("AGENTCFG_NO_COLOR", "1")
			}
			if verbose {
				os.Setenv("AGENTCFG_VERBOSE", "1")
			}
			config.ResetEnv()

			env := config.Env()
			if env.NoColor || !term.IsTerminal(int(os.Stdout.Fd())) {
				color.NoColor = true
			}

			var err error
			log, err = logging.New(env.Verbose)
			if err != nil {
				return fmt.Errorf("init logging: %w", err)
			}

			// History is best-effort: a broken database never blocks
			// the actual request.
			history, err = audit.Open(config.GetPaths().HistoryDB)
			if err != nil {
				log.Warn("request history unavailable", zap.Error(err))
				history = nil
			}
			recorder = audit.NewRecorder(history, "", log)
			return nil
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if history != nil {
				history.Close()
			}
			_ = log.Sync()
		},
	}

	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging")
	rootCmd.PersistentFlags().StringVar(&configDir, "config-dir", "", "Override the opencode config directory")
	rootCmd.PersistentFlags().BoolVar(&noColor, "no-color", false, "Disable coloured output")

	rootCmd.AddGroup(
		&cobra.Group{ID: "request", Title: "Requests:"},
		&cobra.Group{ID: "config", Title: "Configuration:"},
		&cobra.Group{ID: "safety", Title: "Safety:"},
	)

	do := doCmd()
	do.GroupID = "request"
	rootCmd.AddCommand(do)

	repl := replCmd()
	repl.GroupID = "request"
	rootCmd.AddCommand(repl)

	list := listCmd()
	list.GroupID = "config"
	rootCmd.AddCommand(list)

	hook := hookCmd()
	hook.GroupID = "config"
	rootCmd.AddCommand(hook)

	perms := permissionsCmd()
	perms.GroupID = "config"
	rootCmd.AddCommand(perms)

	bak := backupCmd()
	bak.GroupID = "safety"
	rootCmd.AddCommand(bak)

	doctor := doctorCmd()
	doctor.GroupID = "safety"
	rootCmd.AddCommand(doctor)

	hist := historyCmd()
	hist.GroupID = "safety"
	rootCmd.AddCommand(hist)

	rootCmd.AddCommand(versionCmd())

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show agentcfg version",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Printf("agentcfg version %s\n", version)
		},
	}
}
