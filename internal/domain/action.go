package domain

// Action identifies one discrete operation the interpreter can perform.
type Action string

const (
	ActionListAgents     Action = "list-agents"
	ActionListCategories Action = "list-categories"
	ActionListSkills     Action = "list-skills"
	ActionListModels     Action = "list-models"
	ActionCheckUpdates   Action = "check-updates"
	ActionDiagnostics    Action = "run-diagnostics"
	ActionBackup         Action = "backup"
	ActionRestore        Action = "restore"
	ActionCompare        Action = "compare"
	ActionPermissions    Action = "show-permissions"
	ActionAddAgent       Action = "add-agent"
	ActionModifyAgent    Action = "modify-agent"
	ActionAddCategory    Action = "add-category"
	ActionModifyCategory Action = "modify-category"
	ActionDisableHook    Action = "disable-hook"
	ActionEnableHook     Action = "enable-hook"
	ActionUnknown        Action = "unknown"
)

// actionMeta describes each action (extend via map, not switch).
var actionMeta = map[Action]struct {
	Summary  string
	Mutating bool
}{
	ActionListAgents:     {"list configured agents", false},
	ActionListCategories: {"list configured categories", false},
	ActionListSkills:     {"list installed skills", false},
	ActionListModels:     {"list provider models", false},
	ActionCheckUpdates:   {"check for config updates", false},
	ActionDiagnostics:    {"run configuration diagnostics", false},
	ActionBackup:         {"back up both config files", false},
	ActionRestore:        {"restore a config backup", true},
	ActionCompare:        {"compare a backup with the live config", false},
	ActionPermissions:    {"show tool permissions", false},
	ActionAddAgent:       {"add an agent", true},
	ActionModifyAgent:    {"modify an agent", true},
	ActionAddCategory:    {"add a category", true},
	ActionModifyCategory: {"modify a category", true},
	ActionDisableHook:    {"disable a hook", true},
	ActionEnableHook:     {"enable a hook", true},
	ActionUnknown:        {"unrecognised request", false},
}

// Summary returns a short description of the action.
func (a Action) Summary() string {
	if m, ok := actionMeta[a]; ok {
		return m.Summary
	}
	return string(a)
}

// Mutating reports whether the action can write a config file.
func (a Action) Mutating() bool {
	if m, ok := actionMeta[a]; ok {
		return m.Mutating
	}
	return false
}

// Actions returns every known action except ActionUnknown, in a stable
// order suitable for help output.
func Actions() []Action {
	return []Action{
		ActionListAgents, ActionListCategories, ActionListSkills,
		ActionListModels, ActionCheckUpdates, ActionDiagnostics,
		ActionBackup, ActionRestore, ActionCompare, ActionPermissions,
		ActionAddAgent, ActionModifyAgent, ActionAddCategory,
		ActionModifyCategory, ActionDisableHook, ActionEnableHook,
	}
}
