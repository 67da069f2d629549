package bind

import "log/slog"

// logger is shared by the whole package. Discard by default; hosts that
// want tag-parse warnings and edit diagnostics install their own.
var logger = slog.New(slog.DiscardHandler)

// SetLogger installs the logger used for non-fatal diagnostics.
func SetLogger(l *slog.Logger) {
	if l != nil {
		logger = l
	}
}
