package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/joss/agentcfg/internal/backup"
	"github.com/joss/agentcfg/internal/config"
	"github.com/joss/agentcfg/internal/domain"
)

func backupCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "backup",
		Aliases: []string{"bak"},
		Short:   "Config backup and restore",
		Long: `Snapshot, list, restore and compare timestamped copies of the two
opencode config files. The archive keeps the 5 most recent snapshots
across both files.

Examples:
  agentcfg backup create       # Snapshot both config files now
  agentcfg backup list         # Show the archive, most recent first
  agentcfg backup restore 1    # Restore the most recent snapshot
  agentcfg backup compare 2    # Diff snapshot 2 against the live config`,
	}

	cmd.AddCommand(
		backupCreateCmd(),
		backupListCmd(),
		backupRestoreCmd(),
		backupCompareCmd(),
	)

	return cmd
}

func backupCreateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "create",
		Short: "Snapshot both config files",
		Run: func(cmd *cobra.Command, args []string) {
			runRequest("backup my configs", domain.Params{})
		},
	}
}

func backupListCmd() *cobra.Command {
	var limit int

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List archive entries, most recent first",
		Run: func(cmd *cobra.Command, args []string) {
			paths := config.GetPaths()
			mgr := backup.NewManager(paths.Backups, paths.AgentFile, paths.ProviderFile, log)

			names, err := mgr.List(limit)
			if err != nil {
				exitOnError(err)
			}
			if len(names) == 0 {
				fmt.Println("No backups in the archive")
				return
			}

			fmt.Printf("BACKUPS (%s)\n", mgr.Dir())
			fmt.Println()
			for i, name := range names {
				fmt.Printf("  %d. %s\n", i+1, name)
			}
		},
	}

	cmd.Flags().IntVarP(&limit, "limit", "n", 0, "Max entries to show (0 = all)")
	return cmd
}

func backupRestoreCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "restore [index]",
		Short: "Restore an archive entry over the live config",
		Long: `Overwrite the live config file with an archive entry's contents.
The current file is snapshotted first as a safety net. Without an
index the available entries are listed instead.`,
		Args: cobra.MaximumNArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			runRequest("restore backup", domain.Params{BackupIndex: parseIndex(args)})
		},
	}
}

func backupCompareCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "compare [index]",
		Aliases: []string{"diff"},
		Short:   "Diff an archive entry against the live config",
		Args:    cobra.MaximumNArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			runRequest("compare backup", domain.Params{BackupIndex: parseIndex(args)})
		},
	}
}

// parseIndex reads the optional 1-based index argument. Anything
// non-numeric is left for the core's range validation to report.
func parseIndex(args []string) int {
	if len(args) == 0 {
		return 0
	}
	n, err := strconv.Atoi(args[0])
	if err != nil {
		return -1
	}
	return n
}
