package executor

import (
	"bytes"
	"encoding/json"
	"fmt"
	"slices"
	"strconv"
	"strings"

	"github.com/google/go-cmp/cmp"

	"github.com/joss/agentcfg/internal/backup"
	"github.com/joss/agentcfg/internal/domain"
	"github.com/joss/agentcfg/internal/render"
	"github.com/joss/agentcfg/internal/store"
)

func (e *Executor) createBackup(st *state) (string, error) {
	res := e.backups.Create()
	if res.AgentErr != nil && res.ProviderErr != nil {
		return "", fmt.Errorf("backup failed: agent: %v; provider: %v", res.AgentErr, res.ProviderErr)
	}

	var sb strings.Builder
	sb.WriteString("Backup created:\n")
	if res.AgentErr == nil {
		fmt.Fprintf(&sb, "  ✓ %s\n", res.AgentFile)
	} else {
		fmt.Fprintf(&sb, "  ✗ agent config: %v\n", res.AgentErr)
	}
	if res.ProviderErr == nil {
		fmt.Fprintf(&sb, "  ✓ %s\n", res.ProviderFile)
	} else {
		fmt.Fprintf(&sb, "  ✗ opencode config: %v\n", res.ProviderErr)
	}
	fmt.Fprintf(&sb, "Archive: %s", e.backups.Dir())
	return sb.String(), nil
}

// compareBackup diffs a chosen archive entry against the live config
// of the same kind. Without an index it lists the archive instead.
func (e *Executor) compareBackup(st *state) (string, error) {
	name, prompt, err := e.pickBackup(st, "compare")
	if err != nil {
		return "", err
	}
	if prompt != "" {
		return prompt, nil
	}

	kind, err := backup.KindOf(name)
	if err != nil {
		return "", err
	}
	data, err := e.backups.Read(name)
	if err != nil {
		return "", err
	}
	snap, err := store.Decode(name, data)
	if err != nil {
		return "", err
	}

	var changes []render.Change
	if kind == domain.KindAgent {
		changes = diffAgentRoots(snap, st.agent)
	} else {
		changes = diffProviderRoots(snap, st.provider)
	}
	title := fmt.Sprintf("%s config vs %s", kind, name)
	return render.ChangeReport(title, changes), nil
}

func (e *Executor) restoreBackup(st *state) (string, error) {
	name, prompt, err := e.pickBackup(st, "restore")
	if err != nil {
		return "", err
	}
	if prompt != "" {
		return prompt, nil
	}

	kind, err := backup.KindOf(name)
	if err != nil {
		return "", err
	}
	safety, err := e.backups.RestoreWithSafety(name, e.store.PathFor(kind))
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("Restored %s config from %s\nPre-restore state saved as %s", kind, name, safety), nil
}

// pickBackup resolves the 1-based index param against the archive
// listing. With no index it returns the listing prompt instead of a
// name.
func (e *Executor) pickBackup(st *state, verb string) (name, prompt string, err error) {
	if st.params.BackupIndex == 0 {
		hint := fmt.Sprintf("Pick one with %q", verb+" backup 1")
		return "", render.BackupPrompt(st.backups, hint), nil
	}
	idx := st.params.BackupIndex
	if idx < 1 || idx > len(st.backups) {
		return "", "", domain.Validationf("backup index %d is out of range; %d backups available", idx, len(st.backups))
	}
	return st.backups[idx-1], "", nil
}

// diffAgentRoots reports added, removed and changed agent and category
// keys plus any difference in the disabled-hooks set.
func diffAgentRoots(snap, live *domain.Document) []render.Change {
	snapAgents, _ := snap.DocumentField(domain.FieldAgents)
	liveAgents, _ := live.DocumentField(domain.FieldAgents)
	changes := diffSection(nil, domain.FieldAgents, snapAgents, liveAgents)

	snapCats, _ := snap.DocumentField(domain.FieldCategories)
	liveCats, _ := live.DocumentField(domain.FieldCategories)
	changes = diffSection(changes, domain.FieldCategories, snapCats, liveCats)

	snapHooks, _ := snap.StringsField(domain.FieldDisabledHooks)
	liveHooks, _ := live.StringsField(domain.FieldDisabledHooks)
	if !sameSet(snapHooks, liveHooks) {
		changes = append(changes, render.Change{
			Path: domain.FieldDisabledHooks,
			Old:  listJSON(snapHooks),
			New:  listJSON(liveHooks),
		})
	}
	return changes
}

// diffProviderRoots reports the plugin-list difference and added or
// removed provider keys.
func diffProviderRoots(snap, live *domain.Document) []render.Change {
	var changes []render.Change

	snapPlugins, _ := snap.StringsField(domain.FieldPlugins)
	livePlugins, _ := live.StringsField(domain.FieldPlugins)
	if !slices.Equal(snapPlugins, livePlugins) {
		changes = append(changes, render.Change{
			Path: domain.FieldPlugins,
			Old:  listJSON(snapPlugins),
			New:  listJSON(livePlugins),
		})
	}

	snapProv, _ := snap.DocumentField(domain.FieldProviders)
	liveProv, _ := live.DocumentField(domain.FieldProviders)
	for _, key := range snapProv.Keys() {
		if !liveProv.Has(key) {
			changes = append(changes, render.Change{
				Path: domain.FieldProviders + "." + key,
				Old:  providerSummary(snapProv, key),
			})
		}
	}
	for _, key := range liveProv.Keys() {
		if !snapProv.Has(key) {
			changes = append(changes, render.Change{
				Path: domain.FieldProviders + "." + key,
				New:  providerSummary(liveProv, key),
			})
		}
	}
	return changes
}

// diffSection walks one named mapping. Removed keys come first in
// snapshot order, then added and changed keys in live order; changed
// means deep-value inequality.
func diffSection(changes []render.Change, prefix string, snap, live *domain.Document) []render.Change {
	for _, key := range snap.Keys() {
		if !live.Has(key) {
			changes = append(changes, render.Change{
				Path: prefix + "." + key,
				Old:  entryJSON(snap, key),
			})
		}
	}
	for _, key := range live.Keys() {
		if !snap.Has(key) {
			changes = append(changes, render.Change{
				Path: prefix + "." + key,
				New:  entryJSON(live, key),
			})
			continue
		}
		snapRaw, _ := snap.Raw(key)
		liveRaw, _ := live.Raw(key)
		if !jsonEqual(snapRaw, liveRaw) {
			changes = append(changes, render.Change{
				Path: prefix + "." + key,
				Old:  entryJSON(snap, key),
				New:  entryJSON(live, key),
			})
		}
	}
	return changes
}

// entryJSON renders one entry compactly with prompt text redacted. The
// encoder keeps HTML escaping off so the redaction tag's angle
// brackets print as written.
func entryJSON(sectionDoc *domain.Document, key string) string {
	entry, ok := sectionDoc.DocumentField(key)
	if !ok {
		raw, _ := sectionDoc.Raw(key)
		return compactRaw(raw)
	}

	if s, ok := entry.StringField(domain.FieldPromptAppend); ok {
		entry.SetRaw(domain.FieldPromptAppend, json.RawMessage(strconv.Quote(render.Redact(s))))
	}

	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(entry); err != nil {
		raw, _ := sectionDoc.Raw(key)
		return compactRaw(raw)
	}
	return strings.TrimSuffix(buf.String(), "\n")
}

// jsonEqual compares two raw values structurally, ignoring formatting
// and object key order.
func jsonEqual(a, b json.RawMessage) bool {
	var av, bv any
	if err := json.Unmarshal(a, &av); err != nil {
		return string(a) == string(b)
	}
	if err := json.Unmarshal(b, &bv); err != nil {
		return false
	}
	return cmp.Equal(av, bv)
}

func sameSet(a, b []string) bool {
	as := slices.Clone(a)
	bs := slices.Clone(b)
	slices.Sort(as)
	slices.Sort(bs)
	return slices.Equal(as, bs)
}

func listJSON(values []string) string {
	if values == nil {
		values = []string{}
	}
	data, _ := json.Marshal(values)
	return string(data)
}

func providerSummary(providers *domain.Document, key string) string {
	entry, _ := providers.DocumentField(key)
	models, _ := entry.DocumentField(domain.FieldModels)
	return fmt.Sprintf("(%d models)", models.Len())
}

func compactRaw(raw json.RawMessage) string {
	var buf bytes.Buffer
	if err := json.Compact(&buf, raw); err != nil {
		return strings.TrimSpace(string(raw))
	}
	return buf.String()
}
