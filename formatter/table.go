package formatter

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/theoremus-urban-solutions/stop-schedule-report/report"
	"github.com/theoremus-urban-solutions/stop-schedule-report/utils"
)

const (
	rowFormat    = "%-3s %-8s %-20s %-20s %-5s %-10s\n"
	ruleWidth    = 80
	routeJoinSep = " and "
)

// stickyWriter keeps the first write error so callers can check once at the end.
type stickyWriter struct {
	w   io.Writer
	err error
}

func (s *stickyWriter) printf(format string, args ...any) {
	if s.err != nil {
		return
	}
	_, s.err = fmt.Fprintf(s.w, format, args...)
}

// Summary returns the headline for r, e.g. "Found 4 total scheduled stops for BLUE and F8 routes".
func Summary(r *report.Report) string {
	return fmt.Sprintf("Found %d total scheduled stops for %s routes", r.Total, strings.Join(r.Keys, routeJoinSep))
}

// WriteTable writes the summary line and one aligned row per selected entry.
func WriteTable(w io.Writer, r *report.Report) error {
	sw := &stickyWriter{w: w}
	sw.printf("%s\n", Summary(r))
	sw.printf("\nNext %d stops sorted by estimated departure time:\n\n", r.Limit)
	sw.printf(rowFormat, "#", "Route", "Variant", "Est. Departure", "Bus", "Cancelled")
	sw.printf("%s\n", strings.Repeat("-", ruleWidth))

	for i, e := range r.Entries {
		sw.printf(rowFormat,
			strconv.Itoa(i+1),
			e.RouteKey.String(),
			e.VariantName,
			utils.FormatClock(e.Departure),
			e.BusKey.String(),
			formatFlag(e.Cancelled),
		)
	}
	return sw.err
}

func formatFlag(b bool) string {
	if b {
		return "True"
	}
	return "False"
}
