package render

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/joss/agentcfg/internal/domain"
	"github.com/joss/agentcfg/internal/skills"
)

func docFromJSON(t *testing.T, src string) *domain.Document {
	t.Helper()
	doc := domain.NewDocument()
	require.NoError(t, json.Unmarshal([]byte(src), doc))
	return doc
}

// --- Redact Tests ---

func TestRedact(t *testing.T) {
	tests := []struct {
		name string
		give string
		want string
	}{
		{"empty stays empty", "", ""},
		{"counts runes not bytes", "héllo", "<redacted: 5 chars>"},
		{"long prompt", strings.Repeat("a", 120), "<redacted: 120 chars>"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Redact(tt.give))
		})
	}
}

// --- Agent List Tests ---

func TestAgentListEmpty(t *testing.T) {
	assert.Equal(t, "No agents configured", AgentList(docFromJSON(t, `{}`)))
	assert.Equal(t, "No agents configured", AgentList(docFromJSON(t, `{"agents": {}}`)))
}

func TestAgentList(t *testing.T) {
	root := docFromJSON(t, `{
		"agents": {
			"debugger": {"model": "opencode/gpt-5.2", "temperature": 0.2, "promptAppend": "be thorough"},
			"reviewer": {"model": "opencode/gpt-5-mini", "disabled": true}
		}
	}`)

	out := AgentList(root)

	assert.Contains(t, out, "Agents (2):")
	assert.Contains(t, out, "debugger")
	assert.Contains(t, out, "model=opencode/gpt-5.2")
	assert.Contains(t, out, "temperature=0.2")
	assert.Contains(t, out, "disabled")
	// stored key order is preserved
	assert.Less(t, strings.Index(out, "debugger"), strings.Index(out, "reviewer"))
	// prompt text never appears, only its length
	assert.NotContains(t, out, "be thorough")
	assert.Contains(t, out, "prompt=<redacted: 11 chars>")
}

func TestAgentListMissingModel(t *testing.T) {
	root := docFromJSON(t, `{"agents": {"bare": {}}}`)
	assert.Contains(t, AgentList(root), "model=-")
}

// --- Category List Tests ---

func TestCategoryList(t *testing.T) {
	root := docFromJSON(t, `{
		"categories": {
			"quick": {"model": "opencode/gpt-5-mini", "topP": 0.9, "maxTokens": 2048}
		}
	}`)

	out := CategoryList(root)

	assert.Contains(t, out, "Categories (1):")
	assert.Contains(t, out, "quick")
	assert.Contains(t, out, "topP=0.9")
	assert.Contains(t, out, "maxTokens=2048")
}

func TestCategoryListEmpty(t *testing.T) {
	assert.Equal(t, "No categories configured", CategoryList(docFromJSON(t, `{}`)))
}

// --- Model List Tests ---

func TestModelList(t *testing.T) {
	root := docFromJSON(t, `{
		"providers": {
			"opencode": {
				"models": {
					"gpt-5.2": {"displayName": "GPT 5.2", "supportsTools": true, "contextWindow": 200000},
					"gpt-5-mini": {}
				}
			},
			"local": {
				"models": {"llama": {"supportsReasoning": true}}
			}
		}
	}`)

	out := ModelList(root)

	assert.Contains(t, out, "Models (3):")
	assert.Contains(t, out, "opencode/gpt-5.2")
	assert.Contains(t, out, "opencode/gpt-5-mini")
	assert.Contains(t, out, "local/llama")
	assert.Contains(t, out, "GPT 5.2")
	assert.Contains(t, out, "tools")
	assert.Contains(t, out, "ctx=200000")
	assert.Contains(t, out, "reasoning")
}

func TestModelListEmpty(t *testing.T) {
	assert.Equal(t, "No models configured", ModelList(docFromJSON(t, `{}`)))
	assert.Equal(t, "No models configured", ModelList(docFromJSON(t, `{"providers": {"opencode": {}}}`)))
}

// --- Skill List Tests ---

func TestSkillList(t *testing.T) {
	out := SkillList([]skills.Skill{
		{Name: "refactor", Description: "Break up large functions"},
		{Name: "release-notes"},
	})

	assert.Contains(t, out, "Skills (2):")
	assert.Contains(t, out, "refactor")
	assert.Contains(t, out, "Break up large functions")
	// lines with no description carry no trailing padding
	for _, line := range strings.Split(out, "\n") {
		assert.Equal(t, strings.TrimRight(line, " "), line)
	}
}

func TestSkillListEmpty(t *testing.T) {
	assert.Equal(t, "No skills installed", SkillList(nil))
}

// --- Permission Tests ---

func TestPermissionTable(t *testing.T) {
	perms := docFromJSON(t, `{"bash": "ask", "webfetch": "deny"}`)

	out := PermissionTable(perms)

	assert.Contains(t, out, "Tool permissions (2):")
	assert.Contains(t, out, "bash")
	assert.Contains(t, out, "ask")
	assert.Contains(t, out, "deny")
}

func TestPermissionTableEmpty(t *testing.T) {
	assert.Equal(t, "No permissions configured", PermissionTable(domain.NewDocument()))
}

func TestAgentPermissions(t *testing.T) {
	entry := docFromJSON(t, `{"model": "opencode/gpt-5.2", "permission": {"edit": "allow"}}`)

	out := AgentPermissions("formatter", entry)

	assert.Contains(t, out, `Permissions for agent "formatter":`)
	assert.Contains(t, out, "edit")
	assert.Contains(t, out, "allow")
}

func TestAgentPermissionsAbsent(t *testing.T) {
	entry := docFromJSON(t, `{"model": "opencode/gpt-5.2"}`)

	out := AgentPermissions("formatter", entry)

	assert.Contains(t, out, "no per-agent permissions")
	assert.Contains(t, out, "global permissions apply")
}

// --- Backup Prompt Tests ---

func TestBackupPrompt(t *testing.T) {
	names := []string{
		"agent-backup-20260102-110000.json",
		"agent-backup-20260101-090000.json",
	}

	out := BackupPrompt(names, `Pick one with "restore backup 2"`)

	assert.Contains(t, out, "Available backups (most recent first):")
	assert.Contains(t, out, "1. agent-backup-20260102-110000.json")
	assert.Contains(t, out, "2. agent-backup-20260101-090000.json")
	assert.Contains(t, out, `Pick one with "restore backup 2"`)
}

func TestBackupPromptEmpty(t *testing.T) {
	assert.Equal(t, "No backups found", BackupPrompt(nil, "unused"))
}

// --- Entry Details Tests ---

func TestEntryDetails(t *testing.T) {
	entry := docFromJSON(t, `{"model": "opencode/gpt-5.2", "temperature": 0.2, "promptAppend": "never guess"}`)

	out := EntryDetails("Added agent", "debugger", entry)

	assert.Contains(t, out, `Added agent "debugger":`)
	assert.Contains(t, out, "model:")
	assert.Contains(t, out, "opencode/gpt-5.2")
	assert.Contains(t, out, "temperature:")
	assert.Contains(t, out, "0.2")
	assert.NotContains(t, out, "never guess")
	assert.Contains(t, out, "<redacted: 11 chars>")
	// fields render in stored order
	assert.Less(t, strings.Index(out, "model:"), strings.Index(out, "temperature:"))
}

func TestEntryDetailsEmpty(t *testing.T) {
	out := EntryDetails("Updated agent", "debugger", domain.NewDocument())
	assert.Contains(t, out, "(no fields set)")
}

// --- Writer Tests ---

func TestTruncate(t *testing.T) {
	assert.Equal(t, "short", Truncate("short", 10))
	assert.Equal(t, "exactly", Truncate("exactly", 7))
	assert.Equal(t, "this is...", Truncate("this is too long", 10))
}

func TestWriterHelpers(t *testing.T) {
	var sb strings.Builder
	w := NewWriter(&sb)

	w.Header("config check")
	w.Item("agents: %d", 2)
	w.Nested("detail")

	out := sb.String()
	assert.Contains(t, out, "CONFIG CHECK")
	assert.Contains(t, out, "  agents: 2")
	assert.Contains(t, out, "└─ detail")
}
