package report

import (
	"encoding/json"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/theoremus-urban-solutions/stop-schedule-report/schedule"
)

type testStop struct {
	key       string
	estimated string
	cancelled bool
}

type testRoute struct {
	key   string
	name  string
	stops []testStop
}

// snapshot renders routes as a stop-schedule JSON document.
func snapshot(routes ...testRoute) string {
	var rs []string
	for _, r := range routes {
		var stops []string
		for i, s := range r.stops {
			stops = append(stops, fmt.Sprintf(`{
				"key": %q,
				"trip-key": "%s-trip-%d",
				"times": {"departure": {"estimated": %q}},
				"variant": {"name": "%s variant"},
				"bus": {"key": "%d"},
				"cancelled": %t
			}`, s.key, r.key, i, s.estimated, r.key, 500+i, s.cancelled))
		}
		rs = append(rs, fmt.Sprintf(`{"route": {"key": %q, "name": %q}, "scheduled-stops": [%s]}`,
			r.key, r.name, strings.Join(stops, ",")))
	}
	return fmt.Sprintf(`{"stop-schedule": {"route-schedules": [%s]}}`, strings.Join(rs, ","))
}

func mustLoad(t *testing.T, doc string) *schedule.Document {
	t.Helper()
	d, err := schedule.LoadFromBytes([]byte(doc), "test")
	require.NoError(t, err)
	return d
}

func departures(entries []StopEntry) []string {
	out := make([]string, len(entries))
	for i, e := range entries {
		out[i] = e.EstimatedDeparture
	}
	return out
}

func exampleDoc(t *testing.T) *schedule.Document {
	return mustLoad(t, snapshot(
		testRoute{key: "BLUE", name: "BLUE", stops: []testStop{
			{key: "b1", estimated: "2024-01-15T09:00:00Z"},
			{key: "b2", estimated: "2024-01-15T09:05:00Z"},
			{key: "b3", estimated: "2024-01-15T08:58:00Z"},
		}},
		testRoute{key: "F8", name: "Feeder 8", stops: []testStop{
			{key: "f1", estimated: "2024-01-15T09:02:00Z"},
		}},
	))
}

func TestBuild_Example(t *testing.T) {
	rep, err := Build(exampleDoc(t), RouteKeys, Limit)
	require.NoError(t, err)

	assert.Equal(t, 4, rep.Total)
	assert.Equal(t, []string{"BLUE", "F8"}, rep.Keys)
	assert.Equal(t, []string{
		"2024-01-15T08:58:00Z",
		"2024-01-15T09:00:00Z",
		"2024-01-15T09:02:00Z",
		"2024-01-15T09:05:00Z",
	}, departures(rep.Entries))
}

func TestBuild_LimitsToEight(t *testing.T) {
	var stops []testStop
	for i := 0; i < 12; i++ {
		stops = append(stops, testStop{
			key:       fmt.Sprintf("s%d", i),
			estimated: fmt.Sprintf("2024-01-15T10:%02d:00", 59-i),
		})
	}
	rep, err := Build(mustLoad(t, snapshot(testRoute{key: "F8", name: "F8", stops: stops})), RouteKeys, Limit)
	require.NoError(t, err)

	assert.Equal(t, 12, rep.Total)
	require.Len(t, rep.Entries, Limit)
	for i := 1; i < len(rep.Entries); i++ {
		assert.False(t, rep.Entries[i].Departure.Before(rep.Entries[i-1].Departure),
			"entry %d departs before entry %d", i, i-1)
	}
	assert.Equal(t, "2024-01-15T10:48:00", rep.Entries[0].EstimatedDeparture)
}

func TestBuild_NoMatchingRoutes(t *testing.T) {
	doc := mustLoad(t, snapshot(
		testRoute{key: "blue", name: "lowercase", stops: []testStop{{key: "x", estimated: "2024-01-15T09:00:00"}}},
		testRoute{key: "11", name: "Route 11", stops: []testStop{{key: "y", estimated: "2024-01-15T09:00:00"}}},
	))

	rep, err := Build(doc, RouteKeys, Limit)
	require.NoError(t, err)
	assert.Zero(t, rep.Total)
	assert.NotNil(t, rep.Entries)
	assert.Empty(t, rep.Entries)
}

func TestFilter_CaseSensitive(t *testing.T) {
	doc := mustLoad(t, snapshot(
		testRoute{key: "blue", name: "lower"},
		testRoute{key: "BLUE", name: "upper"},
		testRoute{key: "f8", name: "lower"},
	))

	sel, err := Filter(doc, RouteKeys)
	require.NoError(t, err)
	assert.Equal(t, []string{"BLUE"}, sel.Keys())

	rs, ok := sel.Get("BLUE")
	require.True(t, ok)
	assert.Equal(t, "upper", *rs.Route.Name)

	_, ok = sel.Get("blue")
	assert.False(t, ok)
}

func TestFilter_NumericKeysNeverMatch(t *testing.T) {
	doc := mustLoad(t, `{"stop-schedule": {"route-schedules": [
		{"route": {"key": 8, "name": "8"}, "scheduled-stops": []}
	]}}`)

	sel, err := Filter(doc, []string{"8"})
	require.NoError(t, err)
	assert.Zero(t, sel.Len())
}

func TestFilter_DuplicateKeyLastWins(t *testing.T) {
	doc := mustLoad(t, snapshot(
		testRoute{key: "F8", name: "first F8", stops: []testStop{{key: "old", estimated: "2024-01-15T07:00:00"}}},
		testRoute{key: "BLUE", name: "BLUE", stops: []testStop{{key: "b", estimated: "2024-01-15T09:00:00"}}},
		testRoute{key: "F8", name: "second F8", stops: []testStop{{key: "new", estimated: "2024-01-15T08:00:00"}}},
	))

	sel, err := Filter(doc, RouteKeys)
	require.NoError(t, err)
	assert.Equal(t, []string{"F8", "BLUE"}, sel.Keys(), "a replaced route keeps its first position")

	rs, _ := sel.Get("F8")
	assert.Equal(t, "second F8", *rs.Route.Name)

	entries, err := Flatten(sel)
	require.NoError(t, err)
	require.Len(t, entries, 2)
	assert.Equal(t, "new", entries[0].StopKey.String())
	assert.Equal(t, "b", entries[1].StopKey.String())
}

func TestFilter_SchemaErrors(t *testing.T) {
	tests := []struct {
		name  string
		doc   string
		path  string
		field string
	}{
		{"empty document", `{}`, "", "stop-schedule"},
		{"no route schedules", `{"stop-schedule": {}}`, "stop-schedule", "route-schedules"},
		{"no route", `{"stop-schedule": {"route-schedules": [{"scheduled-stops": []}]}}`,
			"stop-schedule.route-schedules[0]", "route"},
		{"no route key", `{"stop-schedule": {"route-schedules": [
			{"route": {"key": "BLUE", "name": "BLUE"}, "scheduled-stops": []},
			{"route": {"name": "nameless"}, "scheduled-stops": []}
		]}}`, "stop-schedule.route-schedules[1]", "route.key"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Filter(mustLoad(t, tt.doc), RouteKeys)

			var schemaErr *schedule.SchemaError
			require.ErrorAs(t, err, &schemaErr)
			assert.Equal(t, tt.path, schemaErr.Path)
			assert.Equal(t, tt.field, schemaErr.Field)
		})
	}
}

func TestFlatten_SchemaErrors(t *testing.T) {
	tests := []struct {
		name  string
		doc   string
		path  string
		field string
	}{
		{
			name:  "no route name",
			doc:   `{"stop-schedule": {"route-schedules": [{"route": {"key": "BLUE"}, "scheduled-stops": []}]}}`,
			path:  "stop-schedule.route-schedules[0].route",
			field: "name",
		},
		{
			name:  "no scheduled stops",
			doc:   `{"stop-schedule": {"route-schedules": [{"route": {"key": "F8", "name": "F8"}}]}}`,
			path:  "stop-schedule.route-schedules[0]",
			field: "scheduled-stops",
		},
		{
			name: "no estimated departure",
			doc: `{"stop-schedule": {"route-schedules": [{"route": {"key": "F8", "name": "F8"}, "scheduled-stops": [
				{"key": "a", "trip-key": "t", "times": {"departure": {"scheduled": "2024-01-15T09:00:00"}},
				 "variant": {"name": "v"}, "bus": {"key": "1"}, "cancelled": false}
			]}]}}`,
			path:  "stop-schedule.route-schedules[0].scheduled-stops[0]",
			field: "times.departure.estimated",
		},
		{
			name: "no bus",
			doc: `{"stop-schedule": {"route-schedules": [{"route": {"key": "BLUE", "name": "BLUE"}, "scheduled-stops": [
				{"key": "a", "trip-key": "t", "times": {"departure": {"estimated": "2024-01-15T09:00:00"}},
				 "variant": {"name": "v"}, "bus": {"key": "1"}, "cancelled": false},
				{"key": "b", "trip-key": "t", "times": {"departure": {"estimated": "2024-01-15T09:00:00"}},
				 "variant": {"name": "v"}, "cancelled": false}
			]}]}}`,
			path:  "stop-schedule.route-schedules[0].scheduled-stops[1]",
			field: "bus",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sel, err := Filter(mustLoad(t, tt.doc), RouteKeys)
			require.NoError(t, err)

			_, err = Flatten(sel)
			var schemaErr *schedule.SchemaError
			require.ErrorAs(t, err, &schemaErr)
			assert.Equal(t, tt.path, schemaErr.Path)
			assert.Equal(t, tt.field, schemaErr.Field)
		})
	}
}

func TestFlatten_SkipsUnselectedRoutes(t *testing.T) {
	// Route 11 lacks every stop field but is never looked at.
	doc := mustLoad(t, `{"stop-schedule": {"route-schedules": [
		{"route": {"key": 11, "name": "Route 11"}, "scheduled-stops": [{}]},
		{"route": {"key": "BLUE", "name": "BLUE"}, "scheduled-stops": []}
	]}}`)

	rep, err := Build(doc, RouteKeys, Limit)
	require.NoError(t, err)
	assert.Zero(t, rep.Total)
}

func TestSort_StableOnTies(t *testing.T) {
	entries := []StopEntry{
		{StopKey: schedule.StringKey("first"), EstimatedDeparture: "2024-01-15T09:00:00"},
		{StopKey: schedule.StringKey("early"), EstimatedDeparture: "2024-01-15T08:00:00"},
		{StopKey: schedule.StringKey("second"), EstimatedDeparture: "2024-01-15T09:00:00Z"},
		{StopKey: schedule.StringKey("third"), EstimatedDeparture: "2024-01-15T03:00:00-06:00"},
	}

	sorted, err := Sort(entries)
	require.NoError(t, err)

	var keys []string
	for _, e := range sorted {
		keys = append(keys, e.StopKey.String())
	}
	assert.Equal(t, []string{"early", "first", "second", "third"}, keys)
	assert.Equal(t, "first", entries[0].StopKey.String(), "input is left untouched")
}

func TestSort_MalformedTimestamp(t *testing.T) {
	doc := mustLoad(t, snapshot(
		testRoute{key: "BLUE", name: "BLUE", stops: []testStop{
			{key: "ok", estimated: "2024-01-15T09:00:00"},
			{key: "bad", estimated: "not-a-date"},
		}},
	))

	rep, err := Build(doc, RouteKeys, Limit)
	assert.Nil(t, rep)

	var formatErr *schedule.FormatError
	require.ErrorAs(t, err, &formatErr)
	assert.Equal(t, "not-a-date", formatErr.Value)
	assert.Contains(t, formatErr.Error(), "stop bad")
}

func TestSelect(t *testing.T) {
	entries := make([]StopEntry, 5)
	assert.Len(t, Select(entries, 8), 5)
	assert.Len(t, Select(entries, 3), 3)
	assert.Len(t, Select(entries, 0), 0)
	assert.Len(t, Select(entries, -1), 0)
	assert.NotNil(t, Select(nil, 8))
}

func TestStopEntry_CancelledIsKept(t *testing.T) {
	doc := mustLoad(t, snapshot(
		testRoute{key: "BLUE", name: "BLUE", stops: []testStop{
			{key: "gone", estimated: "2024-01-15T09:00:00", cancelled: true},
		}},
	))

	rep, err := Build(doc, RouteKeys, Limit)
	require.NoError(t, err)
	require.Len(t, rep.Entries, 1)
	assert.True(t, rep.Entries[0].Cancelled)
}

func TestStopEntry_JSONMatchesInput(t *testing.T) {
	doc := mustLoad(t, `{"stop-schedule": {"route-schedules": [{
		"route": {"key": "BLUE", "name": "BLUE Rapid Transit"},
		"scheduled-stops": [{
			"key": "18223380-34",
			"trip-key": 18223380,
			"times": {"departure": {"estimated": "2024-01-15T09:00:12", "scheduled": "2024-01-15T08:59:00"}},
			"variant": {"name": "To Downtown"},
			"bus": {"key": 521},
			"cancelled": false
		}]
	}]}}`)

	rep, err := Build(doc, RouteKeys, Limit)
	require.NoError(t, err)
	require.Len(t, rep.Entries, 1)

	out, err := json.Marshal(rep.Entries[0])
	require.NoError(t, err)
	assert.JSONEq(t, `{
		"route_key": "BLUE",
		"route_name": "BLUE Rapid Transit",
		"stop_key": "18223380-34",
		"trip_key": 18223380,
		"estimated_departure": "2024-01-15T09:00:12",
		"scheduled_departure": "2024-01-15T08:59:00",
		"variant_name": "To Downtown",
		"bus_key": 521,
		"cancelled": false
	}`, string(out))
}

func TestStopEntry_ScheduledOmittedWhenAbsent(t *testing.T) {
	rep, err := Build(exampleDoc(t), RouteKeys, Limit)
	require.NoError(t, err)

	out, err := json.Marshal(rep.Entries[0])
	require.NoError(t, err)
	assert.NotContains(t, string(out), "scheduled_departure")
}
