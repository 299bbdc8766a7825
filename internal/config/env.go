// Package config centralizes environment and path resolution so the
// rest of the tool never calls os.Getenv directly.
package config

import (
	"os"
	"path/filepath"
	"sync"
)

// AgentcfgEnv holds all agentcfg environment variables.
type AgentcfgEnv struct {
	// ConfigDir overrides the opencode config directory (AGENTCFG_CONFIG_DIR)
	ConfigDir string

	// BackupDir overrides the backup archive directory (AGENTCFG_BACKUP_DIR)
	BackupDir string

	// DataDir overrides the data directory for history (AGENTCFG_DATA_DIR)
	DataDir string

	// NoColor disables coloured output (AGENTCFG_NO_COLOR or NO_COLOR)
	NoColor bool

	// Verbose enables debug logging (AGENTCFG_VERBOSE)
	Verbose bool
}

var (
	env     *AgentcfgEnv
	envOnce sync.Once
)

// Env returns the singleton environment configuration.
// Thread-safe, loads once on first call.
func Env() *AgentcfgEnv {
	envOnce.Do(func() {
		env = &AgentcfgEnv{
			ConfigDir: os.Getenv("AGENTCFG_CONFIG_DIR"),
			BackupDir: os.Getenv("AGENTCFG_BACKUP_DIR"),
			DataDir:   os.Getenv("AGENTCFG_DATA_DIR"),
			NoColor:   os.Getenv("AGENTCFG_NO_COLOR") == "1" || os.Getenv("NO_COLOR") != "",
			Verbose:   os.Getenv("AGENTCFG_VERBOSE") == "1",
		}
	})
	return env
}

// ResetEnv clears the cached environment and paths. Used by tests and
// by the CLI after applying flag overrides via os.Setenv.
func ResetEnv() {
	envOnce = sync.Once{}
	env = nil
	pathsOnce = sync.Once{}
	paths = nil
}

// Paths holds the resolved file locations the tool works with.
type Paths struct {
	// ConfigDir is the opencode config directory (~/.config/opencode)
	ConfigDir string

	// AgentFile is the agent/category config (agent-config.json or .jsonc)
	AgentFile string

	// ProviderFile is the provider/model config (opencode.json or .jsonc)
	ProviderFile string

	// Backups is the backup archive directory
	Backups string

	// Skills is the installed-skills directory
	Skills string

	// Data is the agentcfg data directory (~/.local/share/agentcfg)
	Data string

	// HistoryDB is the request-history database path
	HistoryDB string
}

var (
	paths     *Paths
	pathsOnce sync.Once
)

// GetPaths returns the singleton paths configuration. The config
// directory resolves from AGENTCFG_CONFIG_DIR, then XDG_CONFIG_HOME,
// then ~/.config; data from AGENTCFG_DATA_DIR, then XDG_DATA_HOME,
// then ~/.local/share.
func GetPaths() *Paths {
	pathsOnce.Do(func() {
		e := Env()

		configDir := e.ConfigDir
		if configDir == "" {
			if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
				configDir = filepath.Join(xdg, "opencode")
			} else {
				configDir = filepath.Join(homeDir(), ".config", "opencode")
			}
		}

		dataDir := e.DataDir
		if dataDir == "" {
			if xdg := os.Getenv("XDG_DATA_HOME"); xdg != "" {
				dataDir = filepath.Join(xdg, "agentcfg")
			} else {
				dataDir = filepath.Join(homeDir(), ".local", "share", "agentcfg")
			}
		}

		backupDir := e.BackupDir
		if backupDir == "" {
			backupDir = filepath.Join(configDir, "backups")
		}

		paths = &Paths{
			ConfigDir:    configDir,
			AgentFile:    resolveConfigFile(configDir, "agent-config"),
			ProviderFile: resolveConfigFile(configDir, "opencode"),
			Backups:      backupDir,
			Skills:       filepath.Join(configDir, "skills"),
			Data:         dataDir,
			HistoryDB:    filepath.Join(dataDir, "history.db"),
		}
	})
	return paths
}

// resolveConfigFile prefers an existing .jsonc variant over .json so
// backups mirror the extension actually in use. Default is .json.
func resolveConfigFile(dir, base string) string {
	jsonPath := filepath.Join(dir, base+".json")
	jsoncPath := filepath.Join(dir, base+".jsonc")
	if _, err := os.Stat(jsonPath); err == nil {
		return jsonPath
	}
	if _, err := os.Stat(jsoncPath); err == nil {
		return jsoncPath
	}
	return jsonPath
}

// EnsureDir creates a directory if it doesn't exist.
func EnsureDir(path string) error {
	return os.MkdirAll(path, 0755)
}

func homeDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "."
	}
	return home
}
