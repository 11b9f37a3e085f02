package formatter

import (
	"bytes"
	"encoding/json"

	"github.com/theoremus-urban-solutions/stop-schedule-report/report"
)

const jsonIndent = "  "

// BuildJSON serializes entries as an indented JSON array. An empty selection
// yields "[]", never "null".
func BuildJSON(entries []report.StopEntry) ([]byte, error) {
	if entries == nil {
		entries = []report.StopEntry{}
	}
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", jsonIndent)
	if err := enc.Encode(entries); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
