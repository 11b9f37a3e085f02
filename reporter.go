// Package stopreport prints the next scheduled stops of the BLUE and F8 routes from a
// stop-schedule snapshot, first as a table and then as a JSON dump.
package stopreport

import (
	"io"
	"log/slog"
	"time"

	"github.com/dustin/go-humanize"

	"github.com/theoremus-urban-solutions/stop-schedule-report/config"
	"github.com/theoremus-urban-solutions/stop-schedule-report/formatter"
	"github.com/theoremus-urban-solutions/stop-schedule-report/report"
	"github.com/theoremus-urban-solutions/stop-schedule-report/schedule"
)

// Reporter runs the report pipeline once over a snapshot.
type Reporter struct {
	cfg    config.AppConfig
	logger *slog.Logger
}

// NewReporter creates a reporter. A nil logger discards diagnostics.
func NewReporter(cfg config.AppConfig, logger *slog.Logger) *Reporter {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &Reporter{cfg: cfg, logger: logger}
}

// Run loads the configured snapshot and writes the report to w.
func (r *Reporter) Run(w io.Writer) error {
	start := time.Now()
	doc, err := schedule.Load(r.cfg.Input.Path)
	if err != nil {
		return err
	}
	r.logger.Info("schedule loaded",
		"path", doc.Meta.Source,
		"size", humanize.Bytes(uint64(doc.Meta.Bytes)),
		"compressed", doc.Meta.Compressed,
		"duration", time.Since(start),
	)
	return r.RunDocument(w, doc)
}

// RunDocument writes the report for an already loaded snapshot. Nothing is written
// to w unless filtering, flattening and sorting all succeed.
func (r *Reporter) RunDocument(w io.Writer, doc *schedule.Document) error {
	rep, err := report.Build(doc, report.RouteKeys, report.Limit)
	if err != nil {
		return err
	}
	r.logger.Debug("report built",
		"routes", rep.Keys,
		"total", rep.Total,
		"shown", len(rep.Entries),
	)
	return formatter.WriteReport(w, rep)
}
