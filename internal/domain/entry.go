package domain

import "encoding/json"

// Kind identifies which of the two config files an operation targets.
// The string value doubles as the backup filename prefix.
type Kind string

const (
	KindAgent    Kind = "agent"
	KindProvider Kind = "opencode"
)

// Root-level and entry-level field names used across the tool.
const (
	FieldAgents        = "agents"
	FieldCategories    = "categories"
	FieldDisabledHooks = "disabledHooks"
	FieldProviders     = "providers"
	FieldModels        = "models"
	FieldPermissions   = "permissions"
	FieldPlugins       = "plugins"

	FieldModel        = "model"
	FieldTemperature  = "temperature"
	FieldPromptAppend = "promptAppend"
	FieldPermission   = "permission"
	FieldDescription  = "description"
	FieldDisabled     = "disabled"
	FieldTopP         = "topP"
	FieldMaxTokens    = "maxTokens"
)

// AgentEntry is the typed view of one agents entry, used for display
// and diagnostics. Unknown fields stay behind in the Document.
type AgentEntry struct {
	Model        string            `json:"model,omitempty"`
	Temperature  *float64          `json:"temperature,omitempty"`
	PromptAppend string            `json:"promptAppend,omitempty"`
	Permission   map[string]string `json:"permission,omitempty"`
	Description  string            `json:"description,omitempty"`
	Disabled     bool              `json:"disabled,omitempty"`
}

// CategoryEntry is the typed view of one categories entry.
type CategoryEntry struct {
	Model        string   `json:"model,omitempty"`
	Temperature  *float64 `json:"temperature,omitempty"`
	TopP         *float64 `json:"topP,omitempty"`
	MaxTokens    int      `json:"maxTokens,omitempty"`
	PromptAppend string   `json:"promptAppend,omitempty"`
	Disabled     bool     `json:"disabled,omitempty"`
}

// ModelInfo is the typed view of one provider model entry.
type ModelInfo struct {
	DisplayName       string `json:"displayName,omitempty"`
	SupportsTools     bool   `json:"supportsTools,omitempty"`
	SupportsReasoning bool   `json:"supportsReasoning,omitempty"`
	ContextWindow     int    `json:"contextWindow,omitempty"`
}

// AgentEntryOf decodes the typed fields of an agents entry. Fields
// with unexpected types come back zero rather than failing.
func AgentEntryOf(doc *Document) AgentEntry {
	var e AgentEntry
	decodeInto(doc, &e)
	return e
}

// CategoryEntryOf decodes the typed fields of a categories entry.
func CategoryEntryOf(doc *Document) CategoryEntry {
	var e CategoryEntry
	decodeInto(doc, &e)
	return e
}

// ModelInfoOf decodes the typed fields of a provider model entry.
func ModelInfoOf(doc *Document) ModelInfo {
	var m ModelInfo
	decodeInto(doc, &m)
	return m
}

func decodeInto(doc *Document, v any) {
	if doc == nil {
		return
	}
	data, err := json.Marshal(doc)
	if err != nil {
		return
	}
	// Ignore type mismatches on individual fields.
	_ = json.Unmarshal(data, v)
}
