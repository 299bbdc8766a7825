package render

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/joss/agentcfg/internal/domain"
	"github.com/joss/agentcfg/internal/skills"
)

// Redact replaces prompt text with a length marker so reports never
// echo stored instructions back to the terminal. Empty input stays
// empty.
func Redact(s string) string {
	if s == "" {
		return ""
	}
	return fmt.Sprintf("<redacted: %d chars>", utf8.RuneCountInString(s))
}

// AgentList renders every configured agent with a one-line summary.
func AgentList(root *domain.Document) string {
	agents, _ := root.DocumentField(domain.FieldAgents)
	if agents.Len() == 0 {
		return "No agents configured"
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "Agents (%d):\n", agents.Len())
	for _, name := range agents.Keys() {
		entry, _ := agents.DocumentField(name)
		fmt.Fprintf(&sb, "  %-20s %s\n", name, agentSummary(domain.AgentEntryOf(entry)))
	}
	return strings.TrimRight(sb.String(), "\n")
}

func agentSummary(e domain.AgentEntry) string {
	parts := []string{"model=" + valueOrDash(e.Model)}
	if e.Temperature != nil {
		parts = append(parts, fmt.Sprintf("temperature=%g", *e.Temperature))
	}
	if e.PromptAppend != "" {
		parts = append(parts, "prompt="+Redact(e.PromptAppend))
	}
	if len(e.Permission) > 0 {
		parts = append(parts, fmt.Sprintf("permissions=%d", len(e.Permission)))
	}
	if e.Disabled {
		parts = append(parts, "disabled")
	}
	if e.Description != "" {
		parts = append(parts, Truncate(e.Description, 40))
	}
	return strings.Join(parts, "  ")
}

// CategoryList renders every configured category with a one-line
// summary.
func CategoryList(root *domain.Document) string {
	categories, _ := root.DocumentField(domain.FieldCategories)
	if categories.Len() == 0 {
		return "No categories configured"
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "Categories (%d):\n", categories.Len())
	for _, name := range categories.Keys() {
		entry, _ := categories.DocumentField(name)
		fmt.Fprintf(&sb, "  %-20s %s\n", name, categorySummary(domain.CategoryEntryOf(entry)))
	}
	return strings.TrimRight(sb.String(), "\n")
}

func categorySummary(e domain.CategoryEntry) string {
	parts := []string{"model=" + valueOrDash(e.Model)}
	if e.Temperature != nil {
		parts = append(parts, fmt.Sprintf("temperature=%g", *e.Temperature))
	}
	if e.TopP != nil {
		parts = append(parts, fmt.Sprintf("topP=%g", *e.TopP))
	}
	if e.MaxTokens > 0 {
		parts = append(parts, fmt.Sprintf("maxTokens=%d", e.MaxTokens))
	}
	if e.PromptAppend != "" {
		parts = append(parts, "prompt="+Redact(e.PromptAppend))
	}
	if e.Disabled {
		parts = append(parts, "disabled")
	}
	return strings.Join(parts, "  ")
}

// ModelList renders every model under providers as provider/id lines.
func ModelList(root *domain.Document) string {
	providers, _ := root.DocumentField(domain.FieldProviders)

	var sb strings.Builder
	count := 0
	for _, prov := range providers.Keys() {
		entry, _ := providers.DocumentField(prov)
		models, _ := entry.DocumentField(domain.FieldModels)
		for _, id := range models.Keys() {
			info, _ := models.DocumentField(id)
			line := fmt.Sprintf("  %-32s %s", prov+"/"+id, modelSummary(domain.ModelInfoOf(info)))
			sb.WriteString(strings.TrimRight(line, " ") + "\n")
			count++
		}
	}
	if count == 0 {
		return "No models configured"
	}
	return fmt.Sprintf("Models (%d):\n", count) + strings.TrimRight(sb.String(), "\n")
}

func modelSummary(m domain.ModelInfo) string {
	var parts []string
	if m.DisplayName != "" {
		parts = append(parts, m.DisplayName)
	}
	if m.SupportsTools {
		parts = append(parts, "tools")
	}
	if m.SupportsReasoning {
		parts = append(parts, "reasoning")
	}
	if m.ContextWindow > 0 {
		parts = append(parts, fmt.Sprintf("ctx=%d", m.ContextWindow))
	}
	return strings.Join(parts, "  ")
}

// SkillList renders discovered skills sorted the way the catalog
// returns them.
func SkillList(items []skills.Skill) string {
	if len(items) == 0 {
		return "No skills installed"
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "Skills (%d):\n", len(items))
	for _, s := range items {
		line := fmt.Sprintf("  %-24s %s", s.Name, Truncate(s.Description, 60))
		sb.WriteString(strings.TrimRight(line, " ") + "\n")
	}
	return strings.TrimRight(sb.String(), "\n")
}

// PermissionTable renders the global tool permission map.
func PermissionTable(perms *domain.Document) string {
	if perms.Len() == 0 {
		return "No permissions configured"
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "Tool permissions (%d):\n", perms.Len())
	for _, tool := range perms.Keys() {
		fmt.Fprintf(&sb, "  %-24s %s\n", tool, stringOrRaw(perms, tool))
	}
	return strings.TrimRight(sb.String(), "\n")
}

// AgentPermissions renders one agent's permission overrides.
func AgentPermissions(name string, entry *domain.Document) string {
	perm, ok := entry.DocumentField(domain.FieldPermission)
	if !ok || perm.Len() == 0 {
		return fmt.Sprintf("Agent %q has no per-agent permissions; global permissions apply", name)
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "Permissions for agent %q:\n", name)
	for _, tool := range perm.Keys() {
		fmt.Fprintf(&sb, "  %-24s %s\n", tool, stringOrRaw(perm, tool))
	}
	return strings.TrimRight(sb.String(), "\n")
}

// BackupPrompt lists archived backups newest first with 1-based
// indexes, followed by a caller-supplied hint for choosing one.
func BackupPrompt(names []string, hint string) string {
	if len(names) == 0 {
		return "No backups found"
	}

	var sb strings.Builder
	sb.WriteString("Available backups (most recent first):\n")
	for i, name := range names {
		fmt.Fprintf(&sb, "  %d. %s\n", i+1, name)
	}
	sb.WriteString(hint)
	return sb.String()
}

// EntryDetails renders one config entry field by field in stored
// order. Prompt text is redacted to its length.
func EntryDetails(label, name string, entry *domain.Document) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "%s %q:\n", label, name)
	if entry.Len() == 0 {
		sb.WriteString("  (no fields set)")
		return sb.String()
	}
	for _, key := range entry.Keys() {
		value := stringOrRaw(entry, key)
		if key == domain.FieldPromptAppend {
			if s, ok := entry.StringField(key); ok {
				value = Redact(s)
			}
		}
		fmt.Fprintf(&sb, "  %-14s %s\n", key+":", value)
	}
	return strings.TrimRight(sb.String(), "\n")
}

func stringOrRaw(doc *domain.Document, key string) string {
	if s, ok := doc.StringField(key); ok {
		return s
	}
	raw, _ := doc.Raw(key)
	return compactJSON(raw)
}

func compactJSON(raw json.RawMessage) string {
	var buf bytes.Buffer
	if err := json.Compact(&buf, raw); err != nil {
		return strings.TrimSpace(string(raw))
	}
	return buf.String()
}

func valueOrDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}
