// Package audit keeps a local request history: one row per executed
// request, stored in SQLite. Recording is best-effort and never
// affects the action result.
package audit

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/oklog/ulid/v2"
	"go.uber.org/zap"

	"github.com/joss/agentcfg/internal/domain"
)

// Outcome classifies how a request ended.
type Outcome string

const (
	OutcomeOK         Outcome = "ok"
	OutcomeValidation Outcome = "validation-error"
	OutcomeError      Outcome = "error"
)

// OutcomeFor maps an execution error to its outcome class.
func OutcomeFor(err error) Outcome {
	switch {
	case err == nil:
		return OutcomeOK
	case domain.IsValidation(err):
		return OutcomeValidation
	default:
		return OutcomeError
	}
}

// Event is one recorded request.
type Event struct {
	ID         string
	Session    string
	StartedAt  time.Time
	Action     string
	Request    string
	Outcome    Outcome
	DurationMs int64
	Summary    string
}

// Recorder writes events for one session. A nil recorder or one
// without a store records nothing.
type Recorder struct {
	store   *Store
	session string
	log     *zap.Logger
	now     func() time.Time
}

// NewRecorder creates a recorder bound to session. An empty session id
// gets a fresh ulid.
func NewRecorder(store *Store, session string, log *zap.Logger) *Recorder {
	if session == "" {
		session = ulid.Make().String()
	}
	if log == nil {
		log = zap.NewNop()
	}
	return &Recorder{store: store, session: session, log: log, now: time.Now}
}

// Session returns the recorder's session id.
func (r *Recorder) Session() string {
	if r == nil {
		return ""
	}
	return r.session
}

// Record inserts one history row. On execution failure the summary is
// the error text instead of the report. Insert failures are logged and
// swallowed.
func (r *Recorder) Record(action domain.Action, request string, started time.Time, report string, execErr error) {
	if r == nil || r.store == nil {
		return
	}

	summary := report
	if execErr != nil {
		summary = execErr.Error()
	}
	e := &Event{
		ID:         uuid.New().String(),
		Session:    r.session,
		StartedAt:  started,
		Action:     string(action),
		Request:    request,
		Outcome:    OutcomeFor(execErr),
		DurationMs: r.now().Sub(started).Milliseconds(),
		Summary:    firstLine(summary),
	}

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if err := r.store.Insert(ctx, e); err != nil {
		r.log.Warn("history insert failed",
			zap.String("action", e.Action),
			zap.Error(err))
	}
}

func firstLine(s string) string {
	if i := strings.IndexByte(s, '\n'); i >= 0 {
		s = s[:i]
	}
	return strings.TrimSpace(s)
}
