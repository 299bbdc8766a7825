package render

import (
	"time"

	"github.com/joss/agentcfg/internal/audit"
)

// History renders request-history output.
type History struct {
	*Writer
}

// NewHistory creates a History renderer writing to stdout.
func NewHistory() *History {
	return &History{Writer: Stdout()}
}

// Events renders history rows, newest first.
func (h *History) Events(events []audit.Event) {
	if len(events) == 0 {
		h.Empty("No history recorded")
		return
	}

	h.Header("REQUEST HISTORY (%d entries)", len(events))

	for _, e := range events {
		icon := StatusIcon(outcomeStatus(e.Outcome))
		line := icon + " [" + e.StartedAt.Local().Format("2006-01-02 15:04:05") + "] " + e.Action
		if e.DurationMs > 0 {
			line += " (" + formatDuration(time.Duration(e.DurationMs)*time.Millisecond) + ")"
		}
		h.Println("%s", line)
		h.Item("%s", Truncate(e.Request, 70))
		if e.Summary != "" {
			h.Nested("%s", Truncate(e.Summary, 70))
		}
	}
}

// Stats renders the aggregate footer for the history listing.
func (h *History) Stats(stats audit.Stats) {
	h.Line()
	h.Println("Total: %d  OK: %d  Validation errors: %d  Errors: %d",
		stats.Total, stats.OK, stats.Validation, stats.Errors)
	if stats.AvgDurationMs > 0 {
		h.Println("Avg duration: %.0fms", stats.AvgDurationMs)
	}
}

func outcomeStatus(o audit.Outcome) string {
	switch o {
	case audit.OutcomeOK:
		return "success"
	case audit.OutcomeValidation:
		return "warning"
	default:
		return "error"
	}
}

func formatDuration(d time.Duration) string {
	if d < time.Second {
		return d.Round(time.Millisecond).String()
	}
	return d.Round(time.Second).String()
}
