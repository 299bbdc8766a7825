package store

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/joss/agentcfg/internal/domain"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	dir := t.TempDir()
	return New(
		filepath.Join(dir, "agent-config.json"),
		filepath.Join(dir, "opencode.json"),
		nil,
	)
}

// --- Load Tests ---

func TestLoadMissingFileReturnsEmptyDefault(t *testing.T) {
	s := newTestStore(t)

	doc, err := s.LoadAgent()
	require.NoError(t, err)
	assert.Equal(t, 0, doc.Len())

	doc, err = s.LoadProvider()
	require.NoError(t, err)
	assert.Equal(t, 0, doc.Len())
}

func TestLoadStrictJSONPreservesOrder(t *testing.T) {
	s := newTestStore(t)
	src := `{"zeta": 1, "agents": {"b": {}, "a": {}}, "alpha": 2}`
	require.NoError(t, os.WriteFile(s.AgentPath(), []byte(src), 0644))

	doc, err := s.LoadAgent()
	require.NoError(t, err)

	assert.Equal(t, []string{"zeta", "agents", "alpha"}, doc.Keys())
	agents, ok := doc.DocumentField("agents")
	require.True(t, ok)
	assert.Equal(t, []string{"b", "a"}, agents.Keys())
}

func TestLoadJSONCCommentsAndTrailingCommas(t *testing.T) {
	s := newTestStore(t)
	src := `{
  // agents live here
  "agents": {
    "build": {"model": "anthropic/claude-sonnet"}, /* inline note */
  },
  "disabledHooks": ["comment-checker",],
}`
	require.NoError(t, os.WriteFile(s.AgentPath(), []byte(src), 0644))

	doc, err := s.LoadAgent()
	require.NoError(t, err)

	agents, ok := doc.DocumentField("agents")
	require.True(t, ok)
	entry, ok := agents.DocumentField("build")
	require.True(t, ok)
	model, _ := entry.StringField("model")
	assert.Equal(t, "anthropic/claude-sonnet", model)

	hooks, ok := doc.StringsField("disabledHooks")
	require.True(t, ok)
	assert.Equal(t, []string{"comment-checker"}, hooks)
}

func TestLoadEmptyFileReturnsEmptyDocument(t *testing.T) {
	s := newTestStore(t)
	require.NoError(t, os.WriteFile(s.AgentPath(), []byte("  \n"), 0644))

	doc, err := s.LoadAgent()
	require.NoError(t, err)
	assert.Equal(t, 0, doc.Len())
}

func TestLoadNonObjectIsParseError(t *testing.T) {
	s := newTestStore(t)
	require.NoError(t, os.WriteFile(s.ProviderPath(), []byte(`[1, 2, 3]`), 0644))

	_, err := s.LoadProvider()
	require.Error(t, err)

	var pe *domain.ParseError
	require.ErrorAs(t, err, &pe)
	assert.Equal(t, s.ProviderPath(), pe.Path)
}

// --- Save Tests ---

func TestSaveCanonicalFormat(t *testing.T) {
	s := newTestStore(t)

	doc := domain.NewDocument()
	agents := domain.NewDocument()
	entry := domain.NewDocument()
	entry.SetString("model", "opencode/gpt-5.2")
	agents.SetDocument("debugger", entry)
	doc.SetDocument("agents", agents)

	require.NoError(t, s.SaveAgent(doc))

	data, err := os.ReadFile(s.AgentPath())
	require.NoError(t, err)

	text := string(data)
	assert.True(t, strings.HasSuffix(text, "}\n"), "must end with a trailing newline")
	assert.Contains(t, text, "  \"agents\": {")
	assert.Contains(t, text, "    \"debugger\": {")
	assert.NotContains(t, text, "\t")
}

func TestSaveRewritesJSONCAsPlainJSON(t *testing.T) {
	s := newTestStore(t)
	src := "{\n  // comment\n  \"plugins\": [\"a\",],\n}"
	require.NoError(t, os.WriteFile(s.ProviderPath(), []byte(src), 0644))

	doc, err := s.LoadProvider()
	require.NoError(t, err)
	require.NoError(t, s.SaveProvider(doc))

	data, err := os.ReadFile(s.ProviderPath())
	require.NoError(t, err)
	assert.NotContains(t, string(data), "//")
	assert.JSONEq(t, `{"plugins":["a"]}`, string(data))
}

func TestSaveCreatesParentDirectory(t *testing.T) {
	dir := t.TempDir()
	s := New(
		filepath.Join(dir, "nested", "deeper", "agent-config.json"),
		filepath.Join(dir, "nested", "deeper", "opencode.json"),
		nil,
	)

	require.NoError(t, s.SaveAgent(domain.NewDocument()))

	data, err := os.ReadFile(s.AgentPath())
	require.NoError(t, err)
	assert.Equal(t, "{}\n", string(data))
}

// --- Round-Trip Tests ---

func TestWriteReadRoundTrip(t *testing.T) {
	s := newTestStore(t)
	src := `{"agents":{"x":{"model":"a/b","temperature":0.5,"custom":{"deep":[1,"two",null,true]}}},"categories":{},"disabledHooks":["todo-scanner"],"concurrency":3}`

	doc := domain.NewDocument()
	require.NoError(t, json.Unmarshal([]byte(src), doc))
	require.NoError(t, s.SaveAgent(doc))

	loaded, err := s.LoadAgent()
	require.NoError(t, err)

	out, err := json.Marshal(loaded)
	require.NoError(t, err)
	assert.JSONEq(t, src, string(out))
	assert.Equal(t, doc.Keys(), loaded.Keys())
}

// --- Path Tests ---

func TestPathFor(t *testing.T) {
	s := newTestStore(t)
	assert.Equal(t, s.AgentPath(), s.PathFor(domain.KindAgent))
	assert.Equal(t, s.ProviderPath(), s.PathFor(domain.KindProvider))
}
