package executor

import (
	"fmt"
	"strings"

	"github.com/joss/agentcfg/internal/domain"
	"github.com/joss/agentcfg/internal/render"
	"github.com/joss/agentcfg/internal/selftest"
	"github.com/joss/agentcfg/internal/skills"
)

// Read-only handlers: no backup, no mutation. Collections render in
// the order the config file stores them.

func (e *Executor) listAgents(st *state) (string, error) {
	return render.AgentList(st.agent), nil
}

func (e *Executor) listCategories(st *state) (string, error) {
	return render.CategoryList(st.agent), nil
}

func (e *Executor) listModels(st *state) (string, error) {
	return render.ModelList(st.provider), nil
}

func (e *Executor) listSkills(st *state) (string, error) {
	items, err := skills.Discover(e.paths.Skills)
	if err != nil {
		return "", fmt.Errorf("scan skills: %w", err)
	}
	return render.SkillList(items), nil
}

// showPermissions renders the global tool permission map, or one
// agent's overrides when the request names an agent.
func (e *Executor) showPermissions(st *state) (string, error) {
	if name := st.params.Name; name != "" {
		agents, err := section(st.agent, domain.FieldAgents)
		if err != nil {
			return "", err
		}
		if !agents.Has(name) {
			return "", domain.Validationf("agent %q not found", name)
		}
		entry, _ := agents.DocumentField(name)
		return render.AgentPermissions(name, entry), nil
	}

	perms, err := section(st.provider, domain.FieldPermissions)
	if err != nil {
		return "", err
	}
	return render.PermissionTable(perms), nil
}

// checkUpdates is a local stub: it summarises what is configured and
// states that no network check happens.
func (e *Executor) checkUpdates(st *state) (string, error) {
	agents, _ := st.agent.DocumentField(domain.FieldAgents)
	categories, _ := st.agent.DocumentField(domain.FieldCategories)
	providers, _ := st.provider.DocumentField(domain.FieldProviders)

	var sb strings.Builder
	sb.WriteString("Update check runs locally; no network requests are made.\n")
	fmt.Fprintf(&sb, "Current config: %d agents, %d categories, %d providers.\n",
		agents.Len(), categories.Len(), providers.Len())
	sb.WriteString("Model pricing and availability lookups are not implemented.")
	return sb.String(), nil
}

func (e *Executor) runDiagnostics(st *state) (string, error) {
	return selftest.Check(e.paths).Summary(), nil
}

// unknown is the fallback for requests no rule matched.
func (e *Executor) unknown(st *state) (string, error) {
	var sb strings.Builder
	sb.WriteString("Could not map that request to a supported action.\n")
	sb.WriteString("Things you can ask for:\n")
	for _, a := range domain.Actions() {
		fmt.Fprintf(&sb, "  %-18s %s\n", string(a), a.Summary())
	}
	return strings.TrimRight(sb.String(), "\n"), nil
}
