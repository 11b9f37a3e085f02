package stopreport

import (
	"io"
	"log/slog"

	"github.com/google/uuid"

	"github.com/theoremus-urban-solutions/stop-schedule-report/config"
	"github.com/theoremus-urban-solutions/stop-schedule-report/internal"
)

// InitLogging builds the run logger. Every record carries the run_id of this invocation.
func InitLogging(w io.Writer, cfg config.LoggingConfig) *slog.Logger {
	return internal.NewLogger(w, cfg.Level, cfg.Format).With(slog.String("run_id", uuid.NewString()))
}
