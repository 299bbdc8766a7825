package intent

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/joss/agentcfg/internal/domain"
	"github.com/joss/agentcfg/internal/hooks"
)

// Naming patterns are tried in order; the first capture wins. Captures
// keep the original casing because entry names are case-sensitive.
var (
	agentNamed     = regexp.MustCompile(`(?i)\bagents?\s+(?:named|called)\s+([A-Za-z0-9_-]+)`)
	agentSuffix    = regexp.MustCompile(`(?i)\b([A-Za-z0-9_-]+)\s+agent\b`)
	categoryNamed  = regexp.MustCompile(`(?i)\bcategor(?:y|ies)\s+(?:named|called)\s+([A-Za-z0-9_-]+)`)
	categorySuffix = regexp.MustCompile(`(?i)\b([A-Za-z0-9_-]+)\s+categor`)

	hookNamed   = regexp.MustCompile(`(?i)\bhooks?\s+([A-Za-z0-9_-]+)`)
	modelQuoted = regexp.MustCompile(`(?i)\bmodel\s+(?:to\s+)?(?:"([^"]+)"|'([^']+)')`)
	modelBare   = regexp.MustCompile(`(?i)\bmodel\s+(?:to\s+)?([A-Za-z0-9._/-]+)`)
	tempPattern = regexp.MustCompile(`(?i)\btemperature\s*:?\s*(?:to\s+)?(-?[0-9]+(?:\.[0-9]+)?)`)

	descQuoted   = regexp.MustCompile(`(?i)\bdescription\s*:?\s*(?:"([^"]+)"|'([^']+)')`)
	promptQuoted = regexp.MustCompile(`(?i)\b(?:prompt|instructions?)\s*:?\s*(?:"([^"]+)"|'([^']+)')`)

	indexToken = regexp.MustCompile(`^[0-9]{1,3}$`)
)

// nameStopwords are words that commonly precede "agent" or "category"
// without naming the entry, including the mutation verbs themselves.
var nameStopwords = map[string]bool{
	"a": true, "an": true, "the": true, "my": true, "your": true,
	"new": true, "this": true, "that": true,
	"add": true, "create": true, "modify": true, "change": true,
	"edit": true, "update": true, "disable": true, "enable": true,
	"remove": true, "delete": true,
}

// Extract pulls structured parameters for action out of the request
// text. It is total: fields that do not appear are left at their zero
// values and downstream validation reports anything missing.
func Extract(action domain.Action, request string) domain.Params {
	p := domain.Params{
		Name:        extractName(action, request),
		Hook:        extractHook(request),
		Model:       extractModel(request),
		BackupIndex: extractIndex(request),
	}

	if m := tempPattern.FindStringSubmatch(request); m != nil {
		if v, err := strconv.ParseFloat(m[1], 64); err == nil {
			p.Temperature = &v
		}
	}
	if m := descQuoted.FindStringSubmatch(request); m != nil {
		p.Description = firstGroup(m)
	}
	if m := promptQuoted.FindStringSubmatch(request); m != nil {
		p.Prompt = firstGroup(m)
	}

	// Disable/enable applies to the agent itself only on modify-agent
	// and only when the request is not about a hook.
	if action == domain.ActionModifyAgent {
		t := tokenize(request)
		if !t.has("hook") {
			if t.has("disable") {
				v := true
				p.Disabled = &v
			} else if t.has("enable") {
				v := false
				p.Disabled = &v
			}
		}
	}

	return p
}

func extractName(action domain.Action, request string) string {
	var explicit, suffix *regexp.Regexp
	switch action {
	case domain.ActionAddAgent, domain.ActionModifyAgent, domain.ActionPermissions:
		explicit, suffix = agentNamed, agentSuffix
	case domain.ActionAddCategory, domain.ActionModifyCategory:
		explicit, suffix = categoryNamed, categorySuffix
	default:
		return ""
	}

	if m := explicit.FindStringSubmatch(request); m != nil {
		return m[1]
	}
	for _, m := range suffix.FindAllStringSubmatch(request, -1) {
		if !nameStopwords[strings.ToLower(m[1])] {
			return m[1]
		}
	}
	return ""
}

// extractHook tries the explicit "hook X" form first and falls back to
// scanning the request for any known hook identifier. Hook names are
// all lower case, so the capture is folded.
func extractHook(request string) string {
	if m := hookNamed.FindStringSubmatch(request); m != nil {
		return strings.ToLower(m[1])
	}
	return hooks.FindIn(request)
}

func extractModel(request string) string {
	if m := modelQuoted.FindStringSubmatch(request); m != nil {
		return firstGroup(m)
	}
	if m := modelBare.FindStringSubmatch(request); m != nil {
		return m[1]
	}
	return ""
}

// extractIndex returns the first standalone 1-3 digit token, or 0 when
// the request carries none. Embedded digits, as in "gpt-5.2", never
// count.
func extractIndex(request string) int {
	for _, tok := range strings.Fields(request) {
		tok = strings.Trim(tok, ".,!?;:")
		if indexToken.MatchString(tok) {
			n, _ := strconv.Atoi(tok)
			return n
		}
	}
	return 0
}

func firstGroup(m []string) string {
	for _, g := range m[1:] {
		if g != "" {
			return g
		}
	}
	return ""
}
