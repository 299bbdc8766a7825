package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEnv(t *testing.T) {
	ResetEnv()

	os.Setenv("AGENTCFG_CONFIG_DIR", "/tmp/oc-config")
	os.Setenv("AGENTCFG_BACKUP_DIR", "/tmp/oc-backups")
	os.Setenv("AGENTCFG_VERBOSE", "1")
	defer func() {
		os.Unsetenv("AGENTCFG_CONFIG_DIR")
		os.Unsetenv("AGENTCFG_BACKUP_DIR")
		os.Unsetenv("AGENTCFG_VERBOSE")
		ResetEnv()
	}()

	env := Env()

	assert.Equal(t, "/tmp/oc-config", env.ConfigDir)
	assert.Equal(t, "/tmp/oc-backups", env.BackupDir)
	assert.True(t, env.Verbose)
}

func TestEnvSingleton(t *testing.T) {
	ResetEnv()
	defer ResetEnv()

	env1 := Env()
	env2 := Env()

	assert.Same(t, env1, env2)
}

func TestResetEnv(t *testing.T) {
	os.Setenv("AGENTCFG_CONFIG_DIR", "/first")
	ResetEnv()
	assert.Equal(t, "/first", Env().ConfigDir)

	os.Setenv("AGENTCFG_CONFIG_DIR", "/second")
	ResetEnv()
	assert.Equal(t, "/second", Env().ConfigDir)

	os.Unsetenv("AGENTCFG_CONFIG_DIR")
	ResetEnv()
}

func TestGetPathsWithConfigDirOverride(t *testing.T) {
	dir := t.TempDir()
	os.Setenv("AGENTCFG_CONFIG_DIR", dir)
	os.Unsetenv("AGENTCFG_BACKUP_DIR")
	defer func() {
		os.Unsetenv("AGENTCFG_CONFIG_DIR")
		ResetEnv()
	}()
	ResetEnv()

	paths := GetPaths()

	assert.Equal(t, dir, paths.ConfigDir)
	assert.Equal(t, filepath.Join(dir, "agent-config.json"), paths.AgentFile)
	assert.Equal(t, filepath.Join(dir, "opencode.json"), paths.ProviderFile)
	assert.Equal(t, filepath.Join(dir, "backups"), paths.Backups)
	assert.Equal(t, filepath.Join(dir, "skills"), paths.Skills)
	assert.Contains(t, paths.HistoryDB, "history.db")
}

func TestResolveConfigFilePrefersExistingJsonc(t *testing.T) {
	dir := t.TempDir()

	// No file present: default to .json.
	assert.Equal(t, filepath.Join(dir, "opencode.json"), resolveConfigFile(dir, "opencode"))

	// Only the .jsonc variant exists.
	require.NoError(t, os.WriteFile(filepath.Join(dir, "opencode.jsonc"), []byte("{}\n"), 0644))
	assert.Equal(t, filepath.Join(dir, "opencode.jsonc"), resolveConfigFile(dir, "opencode"))

	// Both exist: .json wins.
	require.NoError(t, os.WriteFile(filepath.Join(dir, "opencode.json"), []byte("{}\n"), 0644))
	assert.Equal(t, filepath.Join(dir, "opencode.json"), resolveConfigFile(dir, "opencode"))
}

func TestEnsureDir(t *testing.T) {
	tempDir := filepath.Join(t.TempDir(), "nested", "dir")

	err := EnsureDir(tempDir)
	assert.NoError(t, err)

	info, err := os.Stat(tempDir)
	assert.NoError(t, err)
	assert.True(t, info.IsDir())

	// Running again should be idempotent
	err = EnsureDir(tempDir)
	assert.NoError(t, err)
}
