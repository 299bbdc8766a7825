// Package selftest provides local validation of the opencode
// configuration environment.
package selftest

import (
	"fmt"
	"os"
	"strings"

	"golang.org/x/term"

	"github.com/joss/agentcfg/internal/backup"
	"github.com/joss/agentcfg/internal/config"
	"github.com/joss/agentcfg/internal/domain"
	"github.com/joss/agentcfg/internal/hooks"
	"github.com/joss/agentcfg/internal/skills"
	"github.com/joss/agentcfg/internal/store"
)

// Environment describes the state of the local configuration.
type Environment struct {
	HasTTY    bool
	ConfigDir string

	Agents     int
	Categories int
	Providers  int
	Models     int
	Backups    int
	Skills     int

	Warnings []string
	Errors   []string
}

// Check validates the configuration environment under paths. Broken
// config files become Errors; questionable-but-parseable content
// becomes Warnings.
func Check(paths config.Paths) *Environment {
	env := &Environment{
		HasTTY:    term.IsTerminal(int(os.Stdin.Fd())),
		ConfigDir: paths.ConfigDir,
	}

	if _, err := os.Stat(paths.ConfigDir); err != nil {
		env.Warnings = append(env.Warnings,
			fmt.Sprintf("config directory %s does not exist yet", paths.ConfigDir))
	}

	st := store.New(paths.AgentFile, paths.ProviderFile, nil)

	agentDoc, err := st.LoadAgent()
	if err != nil {
		env.Errors = append(env.Errors, fmt.Sprintf("agent config: %v", err))
		agentDoc = domain.NewDocument()
	}
	providerDoc, err := st.LoadProvider()
	if err != nil {
		env.Errors = append(env.Errors, fmt.Sprintf("provider config: %v", err))
		providerDoc = domain.NewDocument()
	}

	providers := env.countProviders(providerDoc)
	env.checkAgents(agentDoc, providers)
	env.checkCategories(agentDoc)
	env.checkHooks(agentDoc)

	mgr := backup.NewManager(paths.Backups, paths.AgentFile, paths.ProviderFile, nil)
	if names, err := mgr.List(0); err == nil {
		env.Backups = len(names)
	}
	if err := os.MkdirAll(paths.Backups, 0755); err != nil {
		env.Errors = append(env.Errors,
			fmt.Sprintf("backup directory %s is not writable: %v", paths.Backups, err))
	}

	if found, err := skills.Discover(paths.Skills); err == nil {
		env.Skills = len(found)
	}

	return env
}

func (e *Environment) countProviders(providerDoc *domain.Document) map[string]bool {
	providersDoc, _ := providerDoc.DocumentField(domain.FieldProviders)
	known := make(map[string]bool, providersDoc.Len())

	for _, name := range providersDoc.Keys() {
		known[name] = true
		entry, _ := providersDoc.DocumentField(name)
		models, _ := entry.DocumentField(domain.FieldModels)
		e.Models += models.Len()
	}
	e.Providers = providersDoc.Len()
	return known
}

func (e *Environment) checkAgents(agentDoc *domain.Document, providers map[string]bool) {
	agentsDoc, _ := agentDoc.DocumentField(domain.FieldAgents)
	e.Agents = agentsDoc.Len()

	for _, name := range agentsDoc.Keys() {
		if err := domain.ValidateKey(name); err != nil {
			e.Warnings = append(e.Warnings, fmt.Sprintf("agent %q: %v", name, err))
			continue
		}
		entryDoc, _ := agentsDoc.DocumentField(name)
		entry := domain.AgentEntryOf(entryDoc)

		if entry.Temperature != nil {
			if err := domain.ValidateTemperature("temperature", *entry.Temperature); err != nil {
				e.Warnings = append(e.Warnings, fmt.Sprintf("agent %q: %v", name, err))
			}
		}
		if entry.Model != "" && len(providers) > 0 {
			if prov, _, ok := strings.Cut(entry.Model, "/"); ok && !providers[prov] {
				e.Warnings = append(e.Warnings,
					fmt.Sprintf("agent %q uses model %q from unknown provider %q", name, entry.Model, prov))
			}
		}
	}
}

func (e *Environment) checkCategories(agentDoc *domain.Document) {
	categoriesDoc, _ := agentDoc.DocumentField(domain.FieldCategories)
	e.Categories = categoriesDoc.Len()

	for _, name := range categoriesDoc.Keys() {
		if err := domain.ValidateKey(name); err != nil {
			e.Warnings = append(e.Warnings, fmt.Sprintf("category %q: %v", name, err))
			continue
		}
		entryDoc, _ := categoriesDoc.DocumentField(name)
		entry := domain.CategoryEntryOf(entryDoc)

		if entry.Temperature != nil {
			if err := domain.ValidateTemperature("temperature", *entry.Temperature); err != nil {
				e.Warnings = append(e.Warnings, fmt.Sprintf("category %q: %v", name, err))
			}
		}
		if entry.TopP != nil {
			if err := domain.ValidateTemperature("topP", *entry.TopP); err != nil {
				e.Warnings = append(e.Warnings, fmt.Sprintf("category %q: %v", name, err))
			}
		}
	}
}

func (e *Environment) checkHooks(agentDoc *domain.Document) {
	disabled, ok := agentDoc.StringsField(domain.FieldDisabledHooks)
	if !ok {
		return
	}
	for _, h := range disabled {
		if !hooks.Known(h) {
			e.Warnings = append(e.Warnings, fmt.Sprintf("disabledHooks lists unknown hook %q", h))
		}
	}
}

// IsHealthy reports whether both config files loaded cleanly.
func (e *Environment) IsHealthy() bool {
	return len(e.Errors) == 0
}

// Summary returns a human-readable report.
func (e *Environment) Summary() string {
	var sb strings.Builder

	sb.WriteString("OPENCODE CONFIG CHECK\n")
	sb.WriteString(strings.Repeat("─", 40) + "\n")

	ttyStatus := "No (plain output)"
	if e.HasTTY {
		ttyStatus = "Yes (interactive mode available)"
	}
	sb.WriteString(fmt.Sprintf("TTY:          %s\n", ttyStatus))
	sb.WriteString(fmt.Sprintf("Config dir:   %s\n", e.ConfigDir))
	sb.WriteString(fmt.Sprintf("Agents:       %d\n", e.Agents))
	sb.WriteString(fmt.Sprintf("Categories:   %d\n", e.Categories))
	sb.WriteString(fmt.Sprintf("Providers:    %d (%d models)\n", e.Providers, e.Models))
	sb.WriteString(fmt.Sprintf("Backups:      %d\n", e.Backups))
	sb.WriteString(fmt.Sprintf("Skills:       %d\n", e.Skills))

	if len(e.Warnings) > 0 {
		sb.WriteString("\nWarnings:\n")
		for _, w := range e.Warnings {
			sb.WriteString(fmt.Sprintf("  ! %s\n", w))
		}
	}

	if len(e.Errors) > 0 {
		sb.WriteString("\nErrors:\n")
		for _, err := range e.Errors {
			sb.WriteString(fmt.Sprintf("  ✗ %s\n", err))
		}
	}

	sb.WriteString("\n")
	if e.IsHealthy() {
		sb.WriteString("Status: HEALTHY\n")
	} else {
		sb.WriteString("Status: UNHEALTHY - fix errors above\n")
	}

	return sb.String()
}

// QuickCheck returns a one-line status suitable for non-verbose output.
func (e *Environment) QuickCheck() string {
	if !e.IsHealthy() {
		return fmt.Sprintf("config unhealthy: %s", strings.Join(e.Errors, "; "))
	}
	return fmt.Sprintf("agents:%d categories:%d providers:%d backups:%d warnings:%d",
		e.Agents, e.Categories, e.Providers, e.Backups, len(e.Warnings))
}
