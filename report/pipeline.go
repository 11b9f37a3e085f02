package report

import (
	"fmt"
	"slices"

	"github.com/theoremus-urban-solutions/stop-schedule-report/schedule"
	"github.com/theoremus-urban-solutions/stop-schedule-report/utils"
)

// RouteKeys is the fixed allow-list of routes covered by the report.
var RouteKeys = []string{"BLUE", "F8"}

// Limit is the number of stops the report shows.
const Limit = 8

const routeSchedulesPath = "stop-schedule.route-schedules"

// Selection holds the route schedules kept by Filter. Routes iterate in order of
// first appearance in the document; a later schedule with the same key replaces
// the earlier one but keeps its position.
type Selection struct {
	order  []string
	routes map[string]selected
}

type selected struct {
	index    int
	schedule schedule.RouteSchedule
}

func (s selected) path() string {
	return fmt.Sprintf("%s[%d]", routeSchedulesPath, s.index)
}

func newSelection() *Selection {
	return &Selection{routes: make(map[string]selected)}
}

func (s *Selection) put(key string, index int, rs schedule.RouteSchedule) {
	if _, ok := s.routes[key]; !ok {
		s.order = append(s.order, key)
	}
	s.routes[key] = selected{index: index, schedule: rs}
}

// Keys returns the selected route keys in iteration order.
func (s *Selection) Keys() []string {
	return slices.Clone(s.order)
}

// Get returns the schedule kept for key.
func (s *Selection) Get(key string) (schedule.RouteSchedule, bool) {
	sel, ok := s.routes[key]
	return sel.schedule, ok
}

// Len returns the number of selected routes.
func (s *Selection) Len() int {
	return len(s.order)
}

// Filter keeps the route schedules whose key is in keys. Matching is exact and
// case-sensitive, and numeric route keys never match.
func Filter(doc *schedule.Document, keys []string) (*Selection, error) {
	if doc == nil || doc.StopSchedule == nil {
		return nil, &schedule.SchemaError{Field: "stop-schedule"}
	}
	if doc.StopSchedule.RouteSchedules == nil {
		return nil, &schedule.SchemaError{Path: "stop-schedule", Field: "route-schedules"}
	}

	allowed := make(map[string]struct{}, len(keys))
	for _, k := range keys {
		allowed[k] = struct{}{}
	}

	sel := newSelection()
	for i, rs := range doc.StopSchedule.RouteSchedules {
		if rs.Route == nil {
			return nil, &schedule.SchemaError{Path: fmt.Sprintf("%s[%d]", routeSchedulesPath, i), Field: "route"}
		}
		if rs.Route.Key == nil {
			return nil, &schedule.SchemaError{Path: fmt.Sprintf("%s[%d]", routeSchedulesPath, i), Field: "route.key"}
		}
		if rs.Route.Key.IsNumeric() {
			continue
		}
		key := rs.Route.Key.String()
		if _, ok := allowed[key]; !ok {
			continue
		}
		sel.put(key, i, rs)
	}
	return sel, nil
}

// Flatten projects every scheduled stop of the selection into a StopEntry, route by
// route in selection order and stop by stop in document order.
func Flatten(sel *Selection) ([]StopEntry, error) {
	entries := make([]StopEntry, 0)
	if sel == nil {
		return entries, nil
	}

	for _, key := range sel.order {
		item := sel.routes[key]
		rs := item.schedule
		path := item.path()

		if err := schedule.Validate(path+".route", rs.Route); err != nil {
			return nil, err
		}
		if rs.ScheduledStops == nil {
			return nil, &schedule.SchemaError{Path: path, Field: "scheduled-stops"}
		}

		for j := range rs.ScheduledStops {
			stop := rs.ScheduledStops[j]
			if err := schedule.Validate(fmt.Sprintf("%s.scheduled-stops[%d]", path, j), &stop); err != nil {
				return nil, err
			}
			entries = append(entries, newStopEntry(*rs.Route.Key, *rs.Route.Name, stop))
		}
	}
	return entries, nil
}

// Sort returns the entries ordered by estimated departure, earliest first, with
// Departure filled in. Entries with equal departures keep their relative order.
// Every timestamp is parsed before anything is ordered; the first bad one aborts
// the sort with a *schedule.FormatError.
func Sort(entries []StopEntry) ([]StopEntry, error) {
	sorted := make([]StopEntry, len(entries))
	for i, e := range entries {
		t, err := utils.ParseISO8601(e.EstimatedDeparture)
		if err != nil {
			return nil, &schedule.FormatError{
				Path:  fmt.Sprintf("route %s stop %s estimated departure", e.RouteKey, e.StopKey),
				Value: e.EstimatedDeparture,
				Err:   err,
			}
		}
		e.Departure = t
		sorted[i] = e
	}

	slices.SortStableFunc(sorted, func(a, b StopEntry) int {
		return a.Departure.Compare(b.Departure)
	})
	return sorted, nil
}

// Select returns the first n entries, or all of them when there are fewer.
func Select(entries []StopEntry, n int) []StopEntry {
	n = max(0, min(n, len(entries)))
	out := make([]StopEntry, n)
	copy(out, entries)
	return out
}

// Report is the outcome of one run of the pipeline.
type Report struct {
	Keys    []string
	Limit   int
	Total   int
	Entries []StopEntry
}

// Build runs filter, flatten, sort and select over doc.
func Build(doc *schedule.Document, keys []string, limit int) (*Report, error) {
	sel, err := Filter(doc, keys)
	if err != nil {
		return nil, err
	}
	entries, err := Flatten(sel)
	if err != nil {
		return nil, err
	}
	sorted, err := Sort(entries)
	if err != nil {
		return nil, err
	}
	return &Report{
		Keys:    slices.Clone(keys),
		Limit:   limit,
		Total:   len(sorted),
		Entries: Select(sorted, limit),
	}, nil
}

