package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// --- Params Merge Tests ---

func TestMergeParamsExplicitWinsFieldByField(t *testing.T) {
	temp := 0.3
	extracted := Params{Name: "from-text", Model: "text/model", Temperature: &temp}
	explicit := Params{Name: "from-flag"}

	merged := MergeParams(extracted, explicit)

	assert.Equal(t, "from-flag", merged.Name)
	assert.Equal(t, "text/model", merged.Model)
	assert.Equal(t, &temp, merged.Temperature)
}

func TestMergeParamsPointerFieldsDistinguishZero(t *testing.T) {
	extractedTemp := 0.9
	explicitTemp := 0.0
	disabled := false

	merged := MergeParams(
		Params{Temperature: &extractedTemp},
		Params{Temperature: &explicitTemp, Disabled: &disabled},
	)

	// An explicit 0.0 must override, not be treated as unset.
	assert.NotNil(t, merged.Temperature)
	assert.Equal(t, 0.0, *merged.Temperature)
	assert.NotNil(t, merged.Disabled)
	assert.False(t, *merged.Disabled)
}

func TestMergeParamsNestedGroupsMergeKeyByKey(t *testing.T) {
	extracted := Params{Agent: map[string]any{"model": "a/b", "description": "old"}}
	explicit := Params{Agent: map[string]any{"description": "new", "temperature": 0.2}}

	merged := MergeParams(extracted, explicit)

	assert.Equal(t, map[string]any{
		"model":       "a/b",
		"description": "new",
		"temperature": 0.2,
	}, merged.Agent)
	assert.Nil(t, merged.Category)
}

func TestMergeParamsZeroExplicitKeepsExtracted(t *testing.T) {
	extracted := Params{
		Name:        "debugger",
		Hook:        "comment-checker",
		BackupIndex: 2,
	}

	merged := MergeParams(extracted, Params{})

	assert.Equal(t, extracted.Name, merged.Name)
	assert.Equal(t, extracted.Hook, merged.Hook)
	assert.Equal(t, 2, merged.BackupIndex)
}

// --- Action Metadata Tests ---

func TestActionMetadata(t *testing.T) {
	assert.True(t, ActionAddAgent.Mutating())
	assert.True(t, ActionDisableHook.Mutating())
	assert.False(t, ActionListAgents.Mutating())
	assert.False(t, ActionCompare.Mutating())
	assert.False(t, ActionUnknown.Mutating())

	for _, a := range Actions() {
		assert.NotEmpty(t, a.Summary(), "summary for %s", a)
	}
}
