package cmd

import (
	"log/slog"
	"os"
	"sync"
)

// tracer is the --trace logger: a plain text handler to stderr, one line
// per pipeline stage entered — debug-level stderr tracing gated behind a
// single flag, rather than scattering ad-hoc fmt.Fprintf calls through
// the pipeline stages.
var tracer = sync.OnceValue(func() *slog.Logger {
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug}))
})

func slogTrace(stage string) {
	tracer().Debug("entering stage", "stage", stage)
}
