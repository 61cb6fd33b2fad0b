package feedback

import (
	"log/slog"

	"github.com/randomtoy/ideawheel/internal/ports"
)

// Logger records pulses at debug level. Used by the server, which has no
// haptics of its own; clients render their own cues from polled state.
type Logger struct {
	logger *slog.Logger
}

func NewLogger(logger *slog.Logger) *Logger {
	return &Logger{logger: logger}
}

func (l *Logger) Pulse(kind ports.PulseKind) {
	l.logger.Debug("feedback pulse", "kind", kind)
}
