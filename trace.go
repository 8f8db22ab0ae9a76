package saturday

import (
	"strconv"
	"strings"

	"github.com/sirupsen/logrus"
)

// EventKind identifies which trail mutation produced an Event.
type EventKind int

const (
	EventInit EventKind = iota
	EventGuess
	EventUnitProp
	EventBacktrack
)

func (k EventKind) String() string {
	switch k {
	case EventInit:
		return "INIT"
	case EventGuess:
		return "GUESS"
	case EventUnitProp:
		return "UNITPROP"
	case EventBacktrack:
		return "BACKTRACK"
	default:
		return "UNKNOWN"
	}
}

// Event is one observation of the search engine's trail. Var is 0 for
// EventInit, where there is no single affected variable yet, and for an
// EventBacktrack that found no decision to flip. Trail is a
// snapshot rendered the same way for every event kind: "v k: b" tokens,
// semicolon-separated, where k is 'd' (decision) or 'f' (forced) and b is
// 'T' or 'F'.
type Event struct {
	Kind  EventKind
	Var   int
	Trail string
}

// Tracer receives Events as the search engine mutates its trail. It is
// write-only and must not affect search semantics: the engine never branches
// on what a Tracer does.
type Tracer interface {
	Trace(Event)
}

type nopTracer struct{}

func (nopTracer) Trace(Event) {}

// NopTracer discards every event. It is the default when no tracer is
// configured, so the propagation loop pays no formatting cost.
var NopTracer Tracer = nopTracer{}

// LogrusTracer renders each Event as one structured log line at Debug level,
// with fields "event", "var", and "trail".
type LogrusTracer struct {
	Logger *logrus.Logger
}

// NewLogrusTracer wraps a *logrus.Logger (or logrus.StandardLogger() if nil)
// as a Tracer.
func NewLogrusTracer(logger *logrus.Logger) *LogrusTracer {
	if logger == nil {
		logger = logrus.StandardLogger()
	}
	return &LogrusTracer{Logger: logger}
}

func (t *LogrusTracer) Trace(ev Event) {
	t.Logger.WithFields(logrus.Fields{
		"event": ev.Kind.String(),
		"var":   ev.Var,
		"trail": ev.Trail,
	}).Debug("saturday: trail event")
}

// trailString renders a trail snapshot the way the source implementation's
// PartialValuation.__str__ does: "[v0 k0: b0; v1 k1: b1; ...]".
func trailString(entries []trailEntry, assigned map[int]bool) string {
	var b strings.Builder
	b.WriteByte('[')
	for i, e := range entries {
		if i > 0 {
			b.WriteString("; ")
		}
		b.WriteString(strconv.Itoa(e.v))
		b.WriteByte(' ')
		if e.kind == decisionKind {
			b.WriteByte('d')
		} else {
			b.WriteByte('f')
		}
		b.WriteString(": ")
		if assigned[e.v] {
			b.WriteByte('T')
		} else {
			b.WriteByte('F')
		}
	}
	b.WriteByte(']')
	return b.String()
}
