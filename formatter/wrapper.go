package formatter

import (
	"fmt"
	"io"

	"github.com/theoremus-urban-solutions/stop-schedule-report/report"
)

const dumpLabel = "Detailed JSON output:"

// WriteReport writes the table, a blank-line separator, the dump label and the
// JSON dump. The dump is serialized before anything is written.
func WriteReport(w io.Writer, r *report.Report) error {
	dump, err := BuildJSON(r.Entries)
	if err != nil {
		return fmt.Errorf("encode entries: %w", err)
	}
	if err := WriteTable(w, r); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(w, "\n\n%s\n", dumpLabel); err != nil {
		return err
	}
	_, err = w.Write(dump)
	return err
}
