package hooks

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// --- Registry Tests ---

func TestRegistryHasTwentyFiveHooks(t *testing.T) {
	names := Names()
	assert.Len(t, names, 25)

	seen := make(map[string]bool)
	for _, n := range names {
		assert.False(t, seen[n], "duplicate hook %s", n)
		seen[n] = true
		assert.NotEmpty(t, Describe(n))
	}
}

func TestKnown(t *testing.T) {
	assert.True(t, Known("comment-checker"))
	assert.True(t, Known("auto-format"))
	assert.True(t, Known("backup-reminder"))

	assert.False(t, Known("comment checker"))
	assert.False(t, Known("COMMENT-CHECKER"))
	assert.False(t, Known("made-up-hook"))
	assert.False(t, Known(""))
}

func TestDescribeUnknown(t *testing.T) {
	assert.Empty(t, Describe("nope"))
}

// --- Request Scan Tests ---

func TestFindIn(t *testing.T) {
	tests := []struct {
		name string
		text string
		want string
	}{
		{"exact name", "disable comment-checker please", "comment-checker"},
		{"mixed case request", "Disable The COMMENT-CHECKER", "comment-checker"},
		{"embedded", "turn off the test-runner for now", "test-runner"},
		{"no hyphen no match", "disable the comment checker", ""},
		{"nothing", "list my agents", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, FindIn(tt.text))
		})
	}
}
