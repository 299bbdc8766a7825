package selftest

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/joss/agentcfg/internal/config"
)

func testPaths(t *testing.T) config.Paths {
	t.Helper()
	dir := t.TempDir()
	return config.Paths{
		ConfigDir:    dir,
		AgentFile:    filepath.Join(dir, "agent-config.json"),
		ProviderFile: filepath.Join(dir, "opencode.json"),
		Backups:      filepath.Join(dir, "backups"),
		Skills:       filepath.Join(dir, "skills"),
	}
}

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
}

// --- Check Tests ---

func TestCheckEmptyEnvironment(t *testing.T) {
	env := Check(testPaths(t))

	assert.True(t, env.IsHealthy())
	assert.Zero(t, env.Agents)
	assert.Zero(t, env.Categories)
	assert.Zero(t, env.Providers)
	assert.Zero(t, env.Backups)
	assert.Zero(t, env.Skills)
	assert.Empty(t, env.Errors)
}

func TestCheckCountsEntries(t *testing.T) {
	paths := testPaths(t)
	writeFile(t, paths.AgentFile, `{
  "agents": {"debugger": {"model": "opencode/gpt-5.2"}, "tester": {}},
  "categories": {"research": {"topP": 0.9}}
}`)
	writeFile(t, paths.ProviderFile, `{
  "providers": {"opencode": {"models": {"gpt-5.2": {}, "gpt-5-mini": {}}}}
}`)
	writeFile(t, filepath.Join(paths.Skills, "review/SKILL.md"), "---\nname: review\n---\n")

	env := Check(paths)

	assert.True(t, env.IsHealthy())
	assert.Equal(t, 2, env.Agents)
	assert.Equal(t, 1, env.Categories)
	assert.Equal(t, 1, env.Providers)
	assert.Equal(t, 2, env.Models)
	assert.Equal(t, 1, env.Skills)
	assert.Empty(t, env.Warnings)
}

func TestCheckWarnsOnBadValues(t *testing.T) {
	paths := testPaths(t)
	writeFile(t, paths.AgentFile, `{
  "agents": {"hot": {"temperature": 1.5}},
  "disabledHooks": ["comment-checker", "no-such-hook"]
}`)

	env := Check(paths)

	assert.True(t, env.IsHealthy())
	require.Len(t, env.Warnings, 2)
	assert.Contains(t, env.Warnings[0], "temperature")
	assert.Contains(t, env.Warnings[1], "no-such-hook")
}

func TestCheckWarnsOnUnknownProvider(t *testing.T) {
	paths := testPaths(t)
	writeFile(t, paths.AgentFile, `{"agents": {"a": {"model": "mystery/m1"}}}`)
	writeFile(t, paths.ProviderFile, `{"providers": {"opencode": {"models": {}}}}`)

	env := Check(paths)

	require.Len(t, env.Warnings, 1)
	assert.Contains(t, env.Warnings[0], "mystery")
}

func TestCheckBrokenConfigIsError(t *testing.T) {
	paths := testPaths(t)
	writeFile(t, paths.AgentFile, `[1, 2, 3]`)

	env := Check(paths)

	assert.False(t, env.IsHealthy())
	require.NotEmpty(t, env.Errors)
	assert.Contains(t, env.Errors[0], "agent config")
}

// --- Summary Tests ---

func TestSummary(t *testing.T) {
	env := &Environment{
		ConfigDir: "/tmp/opencode",
		Agents:    2,
		Providers: 1,
		Models:    3,
		Warnings:  []string{"something odd"},
	}

	out := env.Summary()
	assert.Contains(t, out, "OPENCODE CONFIG CHECK")
	assert.Contains(t, out, "Agents:       2")
	assert.Contains(t, out, "Providers:    1 (3 models)")
	assert.Contains(t, out, "something odd")
	assert.Contains(t, out, "Status: HEALTHY")
}

func TestSummaryUnhealthy(t *testing.T) {
	env := &Environment{Errors: []string{"agent config: bad"}}

	out := env.Summary()
	assert.Contains(t, out, "UNHEALTHY")
	assert.Contains(t, out, "agent config: bad")
}

func TestQuickCheck(t *testing.T) {
	env := &Environment{Agents: 3, Categories: 1, Providers: 2, Backups: 4}
	assert.Equal(t, "agents:3 categories:1 providers:2 backups:4 warnings:0", env.QuickCheck())

	env = &Environment{Errors: []string{"boom"}}
	assert.Contains(t, env.QuickCheck(), "unhealthy")
}
