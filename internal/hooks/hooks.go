// Package hooks holds the fixed registry of toggleable host behaviors.
// The host assistant ships these built in; the agent config's
// disabledHooks list switches them off by name. The registry is
// versioned with the tool: a name outside it is rejected, never
// guessed at.
package hooks

import "strings"

// Hook identifiers, grouped by concern.
const (
	// Code review
	CommentChecker   = "comment-checker"
	TodoScanner      = "todo-scanner"
	StyleEnforcer    = "style-enforcer"
	ComplexityWarner = "complexity-warner"
	SpellChecker     = "spell-checker"

	// Editing assistance
	AutoFormat       = "auto-format"
	LintOnSave       = "lint-on-save"
	ImportOrganizer  = "import-organizer"
	DeadCodeDetector = "dead-code-detector"

	// Testing and verification
	TestRunner       = "test-runner"
	CoverageReporter = "coverage-reporter"
	SecretScanner    = "secret-scanner"

	// Git workflow
	DiffSummarizer      = "diff-summarizer"
	CommitSuggester     = "commit-suggester"
	BranchGuard         = "branch-guard"
	MergeConflictHelper = "merge-conflict-helper"
	ChangelogBuilder    = "changelog-builder"

	// Session management
	ContextCompactor = "context-compactor"
	SessionTitler    = "session-titler"
	TokenCounter     = "token-counter"
	CostTracker      = "cost-tracker"

	// Project upkeep
	FileWatcher       = "file-watcher"
	DependencyAuditor = "dependency-auditor"
	DocGenerator      = "doc-generator"
	BackupReminder    = "backup-reminder"
)

// registry lists every known hook in its canonical order. Listing and
// request scanning both follow this order.
var registry = []struct {
	Name        string
	Description string
}{
	{CommentChecker, "flags stale or misleading comments in edited files"},
	{TodoScanner, "collects TODO and FIXME markers from touched code"},
	{StyleEnforcer, "applies the project style guide to generated code"},
	{ComplexityWarner, "warns when an edit pushes function complexity up"},
	{SpellChecker, "spell-checks comments and string literals"},
	{AutoFormat, "runs the formatter after every file write"},
	{LintOnSave, "lints files as they are saved"},
	{ImportOrganizer, "sorts and prunes import blocks"},
	{DeadCodeDetector, "reports code made unreachable by an edit"},
	{TestRunner, "runs affected tests after changes"},
	{CoverageReporter, "reports coverage deltas for changed packages"},
	{SecretScanner, "blocks writes that look like committed credentials"},
	{DiffSummarizer, "summarizes pending diffs before commits"},
	{CommitSuggester, "drafts commit messages from staged changes"},
	{BranchGuard, "warns before edits on protected branches"},
	{MergeConflictHelper, "assists with conflict resolution"},
	{ChangelogBuilder, "keeps the changelog entry for the session"},
	{ContextCompactor, "compacts long sessions to stay within budget"},
	{SessionTitler, "titles sessions from their first exchange"},
	{TokenCounter, "tracks token usage per session"},
	{CostTracker, "tracks estimated spend per session"},
	{FileWatcher, "watches the worktree for external changes"},
	{DependencyAuditor, "audits dependency changes for known issues"},
	{DocGenerator, "keeps doc comments in sync with signatures"},
	{BackupReminder, "reminds about config backups after many edits"},
}

// Names returns all known hook names in registry order.
func Names() []string {
	out := make([]string, len(registry))
	for i, h := range registry {
		out[i] = h.Name
	}
	return out
}

// Known reports whether name is in the registry.
func Known(name string) bool {
	for _, h := range registry {
		if h.Name == name {
			return true
		}
	}
	return false
}

// Describe returns the one-line description for name, empty when
// unknown.
func Describe(name string) string {
	for _, h := range registry {
		if h.Name == name {
			return h.Description
		}
	}
	return ""
}

// FindIn returns the first registry hook whose name appears as a
// substring of text, scanning in registry order. Empty when none
// matches.
func FindIn(text string) string {
	lower := strings.ToLower(text)
	for _, h := range registry {
		if strings.Contains(lower, h.Name) {
			return h.Name
		}
	}
	return ""
}
