package assert

import (
	"log/slog"
	"os"
)

// Success returns v, or logs err and exits. Reserve it for writes to the
// terminal where there is nothing useful left to do on failure.
func Success[T any](v T, err error) T {
	if err != nil {
		slog.Error("unrecoverable error", "error", err)
		os.Exit(1)
	}
	return v
}
