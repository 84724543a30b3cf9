package datasettest

import (
	"io"
	"log/slog"
)

// Logger returns a logger that drops every record.
func Logger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}
