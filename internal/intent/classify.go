// Package intent maps free-text requests to discrete actions and
// structured parameters using deterministic keyword and pattern
// matching. No model call is involved in control decisions.
package intent

import "github.com/joss/agentcfg/internal/domain"

// rule pairs a token predicate with the action it selects.
type rule struct {
	match  func(t tokens) bool
	action domain.Action
}

var (
	listVerbs   = []string{"list", "show", "what"}
	modifyVerbs = []string{"modify", "change", "edit", "update"}
)

// rules are evaluated top to bottom and the first match wins. The
// multi-word rules sit ahead of the single-word ones so that "update
// my agent" reaches modify-agent before the generic update check can
// claim it, and "restore backup 1" reaches restore before backup.
var rules = []rule{
	// Listing requests
	{
		match:  func(t tokens) bool { return t.hasAny(listVerbs...) && t.has("agent") },
		action: domain.ActionListAgents,
	},
	{
		match:  func(t tokens) bool { return t.hasAny(listVerbs...) && t.has("categor") },
		action: domain.ActionListCategories,
	},
	{
		match:  func(t tokens) bool { return t.hasAny(listVerbs...) && t.has("skill") },
		action: domain.ActionListSkills,
	},
	{
		match:  func(t tokens) bool { return t.hasAny(listVerbs...) && t.has("model") },
		action: domain.ActionListModels,
	},

	// Update checks and diagnostics
	{
		match:  func(t tokens) bool { return t.has("update") && !t.has("agent") && !t.has("categor") },
		action: domain.ActionCheckUpdates,
	},
	{
		match:  func(t tokens) bool { return t.has("diagnostic") },
		action: domain.ActionDiagnostics,
	},
	{
		match:  func(t tokens) bool { return t.has("valid") },
		action: domain.ActionDiagnostics,
	},
	{
		match:  func(t tokens) bool { return t.has("check") && !t.has("update") },
		action: domain.ActionDiagnostics,
	},

	// Backup family
	{
		match:  func(t tokens) bool { return t.has("restore") },
		action: domain.ActionRestore,
	},
	{
		match:  func(t tokens) bool { return t.hasAny("compare", "diff") },
		action: domain.ActionCompare,
	},
	{
		match:  func(t tokens) bool { return t.has("backup") },
		action: domain.ActionBackup,
	},

	// Permissions
	{
		match:  func(t tokens) bool { return t.has("perm") },
		action: domain.ActionPermissions,
	},

	// Agent mutations
	{
		match:  func(t tokens) bool { return t.has("add") && t.has("agent") },
		action: domain.ActionAddAgent,
	},
	{
		match:  func(t tokens) bool { return t.hasAny(modifyVerbs...) && t.has("agent") },
		action: domain.ActionModifyAgent,
	},

	// Category mutations
	{
		match:  func(t tokens) bool { return t.has("add") && t.has("categor") },
		action: domain.ActionAddCategory,
	},
	{
		match:  func(t tokens) bool { return t.hasAny(modifyVerbs...) && t.has("categor") },
		action: domain.ActionModifyCategory,
	},

	// Hook toggles
	{
		match:  func(t tokens) bool { return t.has("disable") && t.has("hook") },
		action: domain.ActionDisableHook,
	},
	{
		match:  func(t tokens) bool { return t.has("enable") && t.has("hook") },
		action: domain.ActionEnableHook,
	},

	// Agent toggles phrase like hook toggles but without the word
	// "hook", so this rule must come after both hook rules.
	{
		match:  func(t tokens) bool { return t.hasAny("disable", "enable") && t.has("agent") },
		action: domain.ActionModifyAgent,
	},
}

// Classify maps a free-text request to an action. It is total:
// anything the rules do not claim falls through to ActionUnknown.
func Classify(request string) domain.Action {
	t := tokenize(request)
	for _, r := range rules {
		if r.match(t) {
			return r.action
		}
	}
	return domain.ActionUnknown
}
