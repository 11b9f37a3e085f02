package report

import (
	"time"

	"github.com/theoremus-urban-solutions/stop-schedule-report/schedule"
)

// StopEntry is a scheduled stop flattened together with its route.
// String fields are copied from the snapshot unchanged.
type StopEntry struct {
	RouteKey           schedule.Key `json:"route_key"`
	RouteName          string       `json:"route_name"`
	StopKey            schedule.Key `json:"stop_key"`
	TripKey            schedule.Key `json:"trip_key"`
	EstimatedDeparture string       `json:"estimated_departure"`
	ScheduledDeparture string       `json:"scheduled_departure,omitempty"`
	VariantName        string       `json:"variant_name"`
	BusKey             schedule.Key `json:"bus_key"`
	Cancelled          bool         `json:"cancelled"`

	// Departure is EstimatedDeparture parsed by Sort.
	Departure time.Time `json:"-"`
}

// newStopEntry projects a validated stop.
func newStopEntry(routeKey schedule.Key, routeName string, stop schedule.ScheduledStop) StopEntry {
	e := StopEntry{
		RouteKey:           routeKey,
		RouteName:          routeName,
		StopKey:            *stop.Key,
		TripKey:            *stop.TripKey,
		EstimatedDeparture: *stop.Times.Departure.Estimated,
		VariantName:        *stop.Variant.Name,
		BusKey:             *stop.Bus.Key,
		Cancelled:          *stop.Cancelled,
	}
	if stop.Times.Departure.Scheduled != nil {
		e.ScheduledDeparture = *stop.Times.Departure.Scheduled
	}
	return e
}
