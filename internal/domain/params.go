package domain

// Params carries the structured fields pulled from a request, plus any
// explicit values supplied by the caller. Zero values mean "not given";
// pointer fields distinguish an explicit zero from absence.
type Params struct {
	Name        string
	Model       string
	Temperature *float64
	Prompt      string
	Description string
	Hook        string
	BackupIndex int // 1-based, 0 when not given
	Disabled    *bool

	// Agent and Category hold caller-supplied entry fields that are
	// applied onto the target entry key by key.
	Agent    map[string]any
	Category map[string]any
}

// MergeParams combines extracted params with explicit caller params.
// Explicit values win field by field; the nested Agent and Category
// groups are merged key by key rather than replaced wholesale.
func MergeParams(extracted, explicit Params) Params {
	out := extracted
	if explicit.Name != "" {
		out.Name = explicit.Name
	}
	if explicit.Model != "" {
		out.Model = explicit.Model
	}
	if explicit.Temperature != nil {
		out.Temperature = explicit.Temperature
	}
	if explicit.Prompt != "" {
		out.Prompt = explicit.Prompt
	}
	if explicit.Description != "" {
		out.Description = explicit.Description
	}
	if explicit.Hook != "" {
		out.Hook = explicit.Hook
	}
	if explicit.BackupIndex != 0 {
		out.BackupIndex = explicit.BackupIndex
	}
	if explicit.Disabled != nil {
		out.Disabled = explicit.Disabled
	}
	out.Agent = mergeGroup(extracted.Agent, explicit.Agent)
	out.Category = mergeGroup(extracted.Category, explicit.Category)
	return out
}

func mergeGroup(base, overlay map[string]any) map[string]any {
	if base == nil && overlay == nil {
		return nil
	}
	out := make(map[string]any, len(base)+len(overlay))
	for k, v := range base {
		out[k] = v
	}
	for k, v := range overlay {
		out[k] = v
	}
	return out
}
