package executor

import (
	"github.com/joss/agentcfg/internal/domain"
	"github.com/joss/agentcfg/internal/render"
)

// Mutating handlers share one policy: validate first (bad input never
// triggers a backup), snapshot both files, merge only the fields the
// request carries, persist, and report the resulting entry with
// prompt text redacted.

func (e *Executor) addAgent(st *state) (string, error) {
	p := st.params
	if err := domain.ValidateKey(p.Name); err != nil {
		return "", err
	}
	if err := validateTemperature(p); err != nil {
		return "", err
	}
	if p.Model == "" {
		return "", domain.Validationf("adding an agent requires a model, e.g. \"add agent %s with model opencode/gpt-5.2\"", p.Name)
	}

	agents, err := section(st.agent, domain.FieldAgents)
	if err != nil {
		return "", err
	}
	if agents.Has(p.Name) {
		return "", domain.Validationf("agent %q already exists; ask to modify it instead", p.Name)
	}

	entry := domain.NewDocument()
	entry.SetString(domain.FieldModel, p.Model)
	if p.Temperature != nil {
		entry.SetFloat(domain.FieldTemperature, *p.Temperature)
	}
	if p.Prompt != "" {
		entry.SetString(domain.FieldPromptAppend, p.Prompt)
	}
	if p.Description != "" {
		entry.SetString(domain.FieldDescription, p.Description)
	}
	if p.Disabled != nil {
		entry.SetBool(domain.FieldDisabled, *p.Disabled)
	}
	if err := applyGroup(entry, p.Agent); err != nil {
		return "", err
	}

	note, err := e.backupBeforeWrite(domain.KindAgent)
	if err != nil {
		return "", err
	}

	agents.SetDocument(p.Name, entry)
	st.agent.SetDocument(domain.FieldAgents, agents)
	if err := e.store.SaveAgent(st.agent); err != nil {
		return "", err
	}

	return withNote(render.EntryDetails("Added agent", p.Name, entry), note), nil
}

func (e *Executor) modifyAgent(st *state) (string, error) {
	p := st.params
	if err := domain.ValidateKey(p.Name); err != nil {
		return "", err
	}
	if err := validateTemperature(p); err != nil {
		return "", err
	}

	agents, err := section(st.agent, domain.FieldAgents)
	if err != nil {
		return "", err
	}
	if !agents.Has(p.Name) {
		return "", domain.Validationf("agent %q not found; ask to add it first", p.Name)
	}
	entry, ok := agents.DocumentField(p.Name)
	if !ok {
		return "", domain.Validationf("agent %q is not an object in the config; fix the file by hand", p.Name)
	}

	if !hasAgentChanges(p) {
		return "", domain.Validationf("no changes requested for agent %q; mention a model, temperature, prompt, description or disabled state", p.Name)
	}

	if p.Model != "" {
		entry.SetString(domain.FieldModel, p.Model)
	}
	if p.Temperature != nil {
		entry.SetFloat(domain.FieldTemperature, *p.Temperature)
	}
	if p.Prompt != "" {
		entry.SetString(domain.FieldPromptAppend, p.Prompt)
	}
	if p.Description != "" {
		entry.SetString(domain.FieldDescription, p.Description)
	}
	if p.Disabled != nil {
		entry.SetBool(domain.FieldDisabled, *p.Disabled)
	}
	if err := applyGroup(entry, p.Agent); err != nil {
		return "", err
	}

	note, err := e.backupBeforeWrite(domain.KindAgent)
	if err != nil {
		return "", err
	}

	agents.SetDocument(p.Name, entry)
	st.agent.SetDocument(domain.FieldAgents, agents)
	if err := e.store.SaveAgent(st.agent); err != nil {
		return "", err
	}

	return withNote(render.EntryDetails("Updated agent", p.Name, entry), note), nil
}

func (e *Executor) addCategory(st *state) (string, error) {
	p := st.params
	if err := domain.ValidateKey(p.Name); err != nil {
		return "", err
	}
	if err := validateTemperature(p); err != nil {
		return "", err
	}
	if p.Model == "" {
		return "", domain.Validationf("adding a category requires a model, e.g. \"add category %s with model opencode/gpt-5-mini\"", p.Name)
	}

	categories, err := section(st.agent, domain.FieldCategories)
	if err != nil {
		return "", err
	}
	if categories.Has(p.Name) {
		return "", domain.Validationf("category %q already exists; ask to modify it instead", p.Name)
	}

	entry := domain.NewDocument()
	entry.SetString(domain.FieldModel, p.Model)
	if p.Temperature != nil {
		entry.SetFloat(domain.FieldTemperature, *p.Temperature)
	}
	if p.Prompt != "" {
		entry.SetString(domain.FieldPromptAppend, p.Prompt)
	}
	if p.Disabled != nil {
		entry.SetBool(domain.FieldDisabled, *p.Disabled)
	}
	if err := applyGroup(entry, p.Category); err != nil {
		return "", err
	}

	note, err := e.backupBeforeWrite(domain.KindAgent)
	if err != nil {
		return "", err
	}

	categories.SetDocument(p.Name, entry)
	st.agent.SetDocument(domain.FieldCategories, categories)
	if err := e.store.SaveAgent(st.agent); err != nil {
		return "", err
	}

	return withNote(render.EntryDetails("Added category", p.Name, entry), note), nil
}

func (e *Executor) modifyCategory(st *state) (string, error) {
	p := st.params
	if err := domain.ValidateKey(p.Name); err != nil {
		return "", err
	}
	if err := validateTemperature(p); err != nil {
		return "", err
	}

	categories, err := section(st.agent, domain.FieldCategories)
	if err != nil {
		return "", err
	}
	if !categories.Has(p.Name) {
		return "", domain.Validationf("category %q not found; ask to add it first", p.Name)
	}
	entry, ok := categories.DocumentField(p.Name)
	if !ok {
		return "", domain.Validationf("category %q is not an object in the config; fix the file by hand", p.Name)
	}

	if !hasCategoryChanges(p) {
		return "", domain.Validationf("no changes requested for category %q; mention a model, temperature, prompt or disabled state", p.Name)
	}

	if p.Model != "" {
		entry.SetString(domain.FieldModel, p.Model)
	}
	if p.Temperature != nil {
		entry.SetFloat(domain.FieldTemperature, *p.Temperature)
	}
	if p.Prompt != "" {
		entry.SetString(domain.FieldPromptAppend, p.Prompt)
	}
	if p.Disabled != nil {
		entry.SetBool(domain.FieldDisabled, *p.Disabled)
	}
	if err := applyGroup(entry, p.Category); err != nil {
		return "", err
	}

	note, err := e.backupBeforeWrite(domain.KindAgent)
	if err != nil {
		return "", err
	}

	categories.SetDocument(p.Name, entry)
	st.agent.SetDocument(domain.FieldCategories, categories)
	if err := e.store.SaveAgent(st.agent); err != nil {
		return "", err
	}

	return withNote(render.EntryDetails("Updated category", p.Name, entry), note), nil
}

func validateTemperature(p domain.Params) error {
	if p.Temperature == nil {
		return nil
	}
	return domain.ValidateTemperature(domain.FieldTemperature, *p.Temperature)
}

func hasAgentChanges(p domain.Params) bool {
	return p.Model != "" || p.Temperature != nil || p.Prompt != "" ||
		p.Description != "" || p.Disabled != nil || len(p.Agent) > 0
}

func hasCategoryChanges(p domain.Params) bool {
	return p.Model != "" || p.Temperature != nil || p.Prompt != "" ||
		p.Disabled != nil || len(p.Category) > 0
}

func withNote(report, note string) string {
	if note == "" {
		return report
	}
	return report + "\n" + note
}
