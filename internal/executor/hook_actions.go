package executor

import (
	"fmt"
	"slices"
	"strings"

	"github.com/joss/agentcfg/internal/domain"
	"github.com/joss/agentcfg/internal/hooks"
)

// Hook toggles edit the agent root's disabledHooks list. Toggling a
// hook that is already in the requested state is an informational
// no-op, never an error and never a write.

func (e *Executor) disableHook(st *state) (string, error) {
	return e.toggleHook(st, true)
}

func (e *Executor) enableHook(st *state) (string, error) {
	return e.toggleHook(st, false)
}

func (e *Executor) toggleHook(st *state, disable bool) (string, error) {
	name := st.params.Hook
	if name == "" {
		return "", domain.Validationf("no hook named; known hooks: %s", strings.Join(hooks.Names(), ", "))
	}
	if err := domain.ValidateKey(name); err != nil {
		return "", err
	}
	if !hooks.Known(name) {
		return "", domain.Validationf("unknown hook %q; known hooks: %s", name, strings.Join(hooks.Names(), ", "))
	}

	list, ok := st.agent.StringsField(domain.FieldDisabledHooks)
	if !ok && st.agent.Has(domain.FieldDisabledHooks) {
		return "", domain.Validationf("config field %q is not a string list; fix the file by hand", domain.FieldDisabledHooks)
	}
	idx := slices.Index(list, name)

	if disable && idx >= 0 {
		return fmt.Sprintf("Hook %q is already disabled; nothing to change", name), nil
	}
	if !disable && idx < 0 {
		return fmt.Sprintf("Hook %q is not disabled; nothing to change", name), nil
	}

	note, err := e.backupBeforeWrite(domain.KindAgent)
	if err != nil {
		return "", err
	}

	if disable {
		list = append(list, name)
	} else {
		list = append(list[:idx], list[idx+1:]...)
	}
	st.agent.SetStrings(domain.FieldDisabledHooks, list)
	if err := e.store.SaveAgent(st.agent); err != nil {
		return "", err
	}

	var sb strings.Builder
	if disable {
		fmt.Fprintf(&sb, "Disabled hook %q (%s)\n", name, hooks.Describe(name))
	} else {
		fmt.Fprintf(&sb, "Enabled hook %q\n", name)
	}
	if len(list) == 0 {
		sb.WriteString("Disabled hooks now: none")
	} else {
		fmt.Fprintf(&sb, "Disabled hooks now: %s", strings.Join(list, ", "))
	}
	return withNote(sb.String(), note), nil
}
