package intent

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/joss/agentcfg/internal/domain"
)

// --- Name Extraction Tests ---

func TestExtractName(t *testing.T) {
	tests := []struct {
		name    string
		action  domain.Action
		request string
		want    string
	}{
		{"agent called", domain.ActionAddAgent, "add a new agent called debugger", "debugger"},
		{"agent named", domain.ActionAddAgent, "add an agent named reviewer-2", "reviewer-2"},
		{"agent suffix", domain.ActionModifyAgent, "change the model for the debugger agent", "debugger"},
		{"keeps casing", domain.ActionModifyAgent, "disable the Debugger agent", "Debugger"},
		{"stopword skipped", domain.ActionModifyAgent, "modify my agent", ""},
		{"verb skipped", domain.ActionAddAgent, "add agent", ""},
		{"category called", domain.ActionAddCategory, "add a category called research", "research"},
		{"category suffix", domain.ActionModifyCategory, "edit the research category", "research"},
		{"permissions agent scope", domain.ActionPermissions, "permissions for the formatter agent", "formatter"},
		{"other actions skip names", domain.ActionListAgents, "the debugger agent", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := Extract(tt.action, tt.request)
			assert.Equal(t, tt.want, p.Name)
		})
	}
}

// --- Hook Extraction Tests ---

func TestExtractHook(t *testing.T) {
	tests := []struct {
		name    string
		request string
		want    string
	}{
		{"explicit form", "disable hook comment-checker", "comment-checker"},
		{"explicit folds case", "disable hook Comment-Checker", "comment-checker"},
		{"registry scan", "disable the comment-checker hook", "comment-checker"},
		{"registry scan mid-sentence", "turn off secret-scanner for a while", "secret-scanner"},
		{"explicit wins over scan", "disable hook foobar not comment-checker", "foobar"},
		{"unknown name kept", "disable hook foobar", "foobar"},
		{"no hook", "list my agents", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := Extract(domain.ActionDisableHook, tt.request)
			assert.Equal(t, tt.want, p.Hook)
		})
	}
}

// --- Model Extraction Tests ---

func TestExtractModel(t *testing.T) {
	tests := []struct {
		name    string
		request string
		want    string
	}{
		{"bare", "use model opencode/gpt-5.2", "opencode/gpt-5.2"},
		{"bare with to", "change the model to openai/o3", "openai/o3"},
		{"double quoted", `set model "Custom Model v2"`, "Custom Model v2"},
		{"single quoted", "set model 'claude sonnet'", "claude sonnet"},
		{"quoted wins over bare", `model plain then model "quoted one"`, "quoted one"},
		{"plural not matched", "list my models", ""},
		{"none", "list agents", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := Extract(domain.ActionModifyAgent, tt.request)
			assert.Equal(t, tt.want, p.Model)
		})
	}
}

// --- Temperature Extraction Tests ---

func TestExtractTemperature(t *testing.T) {
	tests := []struct {
		name    string
		request string
		want    float64
	}{
		{"bare", "temperature 0.7", 0.7},
		{"with to", "set the temperature to 0.8", 0.8},
		{"with colon", "temperature: 0.5", 0.5},
		{"integer", "set temperature to 1", 1.0},
		// Extraction is range-agnostic; validation rejects these later.
		{"above range", "temperature 1.01", 1.01},
		{"negative", "temperature -0.01", -0.01},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := Extract(domain.ActionModifyAgent, tt.request)
			require.NotNil(t, p.Temperature)
			assert.InDelta(t, tt.want, *p.Temperature, 1e-9)
		})
	}
}

func TestExtractTemperatureAbsent(t *testing.T) {
	p := Extract(domain.ActionModifyAgent, "change the model to openai/o3")
	assert.Nil(t, p.Temperature)
}

// --- Backup Index Tests ---

func TestExtractBackupIndex(t *testing.T) {
	tests := []struct {
		name    string
		request string
		want    int
	}{
		{"single digit", "restore backup 1", 1},
		{"two digits", "compare with backup 12", 12},
		{"trailing period", "restore backup 2.", 2},
		{"four digits ignored", "restore backup 1234", 0},
		{"embedded digits ignored", "use model gpt-5.2", 0},
		{"none", "restore a backup", 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := Extract(domain.ActionRestore, tt.request)
			assert.Equal(t, tt.want, p.BackupIndex)
		})
	}
}

// --- Free-Text Field Tests ---

func TestExtractQuotedFields(t *testing.T) {
	p := Extract(domain.ActionAddAgent, `add agent called tester description "runs the tests" prompt 'always verify'`)
	assert.Equal(t, "runs the tests", p.Description)
	assert.Equal(t, "always verify", p.Prompt)

	p = Extract(domain.ActionModifyAgent, `update the tester agent with instructions "be terse"`)
	assert.Equal(t, "be terse", p.Prompt)

	p = Extract(domain.ActionModifyAgent, `description: 'colon form'`)
	assert.Equal(t, "colon form", p.Description)
}

func TestExtractUnquotedFreeTextIgnored(t *testing.T) {
	p := Extract(domain.ActionModifyAgent, "set description runs the tests")
	assert.Empty(t, p.Description)

	p = Extract(domain.ActionModifyAgent, "prompt always verify")
	assert.Empty(t, p.Prompt)
}

// --- Disable Inference Tests ---

func TestExtractDisabledFlag(t *testing.T) {
	p := Extract(domain.ActionModifyAgent, "disable the debugger agent")
	require.NotNil(t, p.Disabled)
	assert.True(t, *p.Disabled)

	p = Extract(domain.ActionModifyAgent, "enable the debugger agent")
	require.NotNil(t, p.Disabled)
	assert.False(t, *p.Disabled)
}

func TestExtractDisabledFlagGuards(t *testing.T) {
	// The word "hook" routes disable/enable to the hook actions, so no
	// agent flag is inferred.
	p := Extract(domain.ActionModifyAgent, "change my debugger agent and disable its hook")
	assert.Nil(t, p.Disabled)

	// Only modify-agent infers the flag.
	p = Extract(domain.ActionDisableHook, "disable hook comment-checker")
	assert.Nil(t, p.Disabled)
}

// --- Scenario Tests ---

func TestExtractAddAgentScenario(t *testing.T) {
	request := "add a new agent called debugger with model opencode/gpt-5.2"

	action := Classify(request)
	require.Equal(t, domain.ActionAddAgent, action)

	p := Extract(action, request)
	assert.Equal(t, "debugger", p.Name)
	assert.Equal(t, "opencode/gpt-5.2", p.Model)
	assert.Nil(t, p.Temperature)
	assert.Empty(t, p.Prompt)
	assert.Empty(t, p.Description)
}
