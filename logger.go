package keyedset

import "log/slog"

// relocationLogger wraps an optional slog.Logger for index maintenance
// events. A nil inner logger makes every call a no-op.
type relocationLogger struct {
	l *slog.Logger
}

func newRelocationLogger(l *slog.Logger) *relocationLogger {
	return &relocationLogger{l: l}
}

func (r *relocationLogger) displaced(key any) {
	if r.l == nil {
		return
	}
	r.l.Debug("insert displaced prior occupant", "key", key)
}

func (r *relocationLogger) relocated(oldKey, newKey any) {
	if r.l == nil {
		return
	}
	r.l.Debug("element relocated", "from", oldKey, "to", newKey)
}
