// Package executor dispatches classified requests against the live
// config files. Each invocation is self-contained: it loads both
// roots, runs classification and extraction on the request text,
// merges explicit caller params, and hands off to the action's
// handler. Mutating handlers snapshot before writing.
package executor

import (
	"fmt"
	"sort"

	"go.uber.org/zap"

	"github.com/joss/agentcfg/internal/backup"
	"github.com/joss/agentcfg/internal/config"
	"github.com/joss/agentcfg/internal/domain"
	"github.com/joss/agentcfg/internal/intent"
	"github.com/joss/agentcfg/internal/store"
)

// Executor owns the collaborators shared by all handlers. It keeps no
// state between requests.
type Executor struct {
	paths   config.Paths
	store   *store.Store
	backups *backup.Manager
	log     *zap.Logger
}

// New creates an executor over the resolved paths.
func New(paths config.Paths, log *zap.Logger) *Executor {
	if log == nil {
		log = zap.NewNop()
	}
	return &Executor{
		paths:   paths,
		store:   store.New(paths.AgentFile, paths.ProviderFile, log),
		backups: backup.NewManager(paths.Backups, paths.AgentFile, paths.ProviderFile, log),
		log:     log,
	}
}

// Response carries one executed request's outcome. Report is the only
// output channel for the user; callers print it verbatim.
type Response struct {
	Action domain.Action
	Params domain.Params
	Report string
}

// state is the working data for a single request.
type state struct {
	request  string
	params   domain.Params
	agent    *domain.Document
	provider *domain.Document
	backups  []string
}

// handlers maps each action to its implementation (extend via map,
// not switch).
var handlers = map[domain.Action]func(*Executor, *state) (string, error){
	domain.ActionListAgents:     (*Executor).listAgents,
	domain.ActionListCategories: (*Executor).listCategories,
	domain.ActionListSkills:     (*Executor).listSkills,
	domain.ActionListModels:     (*Executor).listModels,
	domain.ActionCheckUpdates:   (*Executor).checkUpdates,
	domain.ActionDiagnostics:    (*Executor).runDiagnostics,
	domain.ActionBackup:         (*Executor).createBackup,
	domain.ActionRestore:        (*Executor).restoreBackup,
	domain.ActionCompare:        (*Executor).compareBackup,
	domain.ActionPermissions:    (*Executor).showPermissions,
	domain.ActionAddAgent:       (*Executor).addAgent,
	domain.ActionModifyAgent:    (*Executor).modifyAgent,
	domain.ActionAddCategory:    (*Executor).addCategory,
	domain.ActionModifyCategory: (*Executor).modifyCategory,
	domain.ActionDisableHook:    (*Executor).disableHook,
	domain.ActionEnableHook:     (*Executor).enableHook,
}

// Execute runs one request end to end. Validation failures come back
// as *domain.ValidationError with no mutation performed; read or parse
// failures on the config files abort the request.
func (e *Executor) Execute(request string, explicit domain.Params) (*Response, error) {
	action := intent.Classify(request)
	params := domain.MergeParams(intent.Extract(action, request), explicit)
	e.log.Debug("request classified",
		zap.String("action", string(action)),
		zap.String("request", request))

	agentDoc, err := e.store.LoadAgent()
	if err != nil {
		return nil, err
	}
	providerDoc, err := e.store.LoadProvider()
	if err != nil {
		return nil, err
	}

	st := &state{
		request:  request,
		params:   params,
		agent:    agentDoc,
		provider: providerDoc,
	}
	if names, err := e.backups.List(backup.RetainCount); err != nil {
		e.log.Warn("backup listing unavailable", zap.Error(err))
	} else {
		st.backups = names
	}

	handler, ok := handlers[action]
	if !ok {
		handler = (*Executor).unknown
	}
	report, err := handler(e, st)
	if err != nil {
		return nil, err
	}
	return &Response{Action: action, Params: params, Report: report}, nil
}

// section returns the named object under root, empty when absent. A
// present value of any other JSON type is rejected rather than
// silently replaced.
func section(root *domain.Document, key string) (*domain.Document, error) {
	doc, ok := root.DocumentField(key)
	if !ok && root.Has(key) {
		return nil, domain.Validationf("config field %q is not an object; fix the file by hand", key)
	}
	return doc, nil
}

// backupBeforeWrite snapshots both files and requires that the
// mutation's own file was captured. A failure on the other file is
// reported in the note but never blocks the write.
func (e *Executor) backupBeforeWrite(target domain.Kind) (string, error) {
	res := e.backups.Create()

	targetErr, otherErr := res.AgentErr, res.ProviderErr
	otherKind := domain.KindProvider
	if target == domain.KindProvider {
		targetErr, otherErr = res.ProviderErr, res.AgentErr
		otherKind = domain.KindAgent
	}

	if targetErr != nil {
		return "", fmt.Errorf("backup %s config before writing: %w", target, targetErr)
	}
	if otherErr != nil {
		e.log.Warn("secondary backup failed",
			zap.String("kind", string(otherKind)), zap.Error(otherErr))
		return fmt.Sprintf("(backup of the %s config failed: %v)", otherKind, otherErr), nil
	}
	return "", nil
}

// applyGroup copies caller-supplied entry fields onto the entry in a
// stable key order.
func applyGroup(entry *domain.Document, fields map[string]any) error {
	keys := make([]string, 0, len(fields))
	for k := range fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		if err := entry.SetAny(k, fields[k]); err != nil {
			return err
		}
	}
	return nil
}
