package schedule

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// Document is the root of a stop-schedule snapshot.
type Document struct {
	StopSchedule *StopSchedule `json:"stop-schedule"`

	// Meta describes where the document came from. It is not part of the snapshot.
	Meta Meta `json:"-"`
}

// Meta records the source of a loaded document.
type Meta struct {
	Source     string
	Bytes      int
	Compressed bool
}

// StopSchedule holds the route schedules of a snapshot.
type StopSchedule struct {
	RouteSchedules []RouteSchedule `json:"route-schedules"`
}

// RouteSchedule is the set of scheduled stops for one route.
type RouteSchedule struct {
	Route          *Route          `json:"route" validate:"required"`
	ScheduledStops []ScheduledStop `json:"scheduled-stops" validate:"required"`
}

// Route identifies a bus route.
type Route struct {
	Key  *Key    `json:"key" validate:"required"`
	Name *string `json:"name" validate:"required"`
}

// ScheduledStop is one stop event for one trip.
type ScheduledStop struct {
	Key       *Key       `json:"key" validate:"required"`
	TripKey   *Key       `json:"trip-key" validate:"required"`
	Times     *StopTimes `json:"times" validate:"required"`
	Variant   *Variant   `json:"variant" validate:"required"`
	Bus       *Bus       `json:"bus" validate:"required"`
	Cancelled *bool      `json:"cancelled" validate:"required"`
}

// StopTimes holds the timing block of a scheduled stop.
type StopTimes struct {
	Departure *Departure `json:"departure" validate:"required"`
}

// Departure carries the estimated and, when published, the scheduled departure
// as ISO-8601 strings.
type Departure struct {
	Estimated *string `json:"estimated" validate:"required"`
	Scheduled *string `json:"scheduled,omitempty"`
}

// Variant is a named sub-pattern of a route.
type Variant struct {
	Name *string `json:"name" validate:"required"`
}

// Bus identifies the vehicle serving a stop.
type Bus struct {
	Key *Key `json:"key" validate:"required"`
}

// Key is an identifier published either as a JSON string or as a JSON number.
type Key struct {
	text    string
	numeric bool
}

// StringKey returns a Key holding a JSON string.
func StringKey(s string) Key {
	return Key{text: s}
}

// NumberKey returns a Key holding a JSON number literal such as "521".
func NumberKey(n string) Key {
	return Key{text: n, numeric: true}
}

// String returns the key text; numbers are returned as written in the snapshot.
func (k Key) String() string {
	return k.text
}

// IsNumeric reports whether the key was published as a JSON number.
func (k Key) IsNumeric() bool {
	return k.numeric
}

// UnmarshalJSON accepts a JSON string or a JSON number.
func (k *Key) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if len(b) > 0 && b[0] == '"' {
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		*k = Key{text: s}
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(b, &n); err != nil {
		return fmt.Errorf("key must be a string or a number, got %s", b)
	}
	*k = Key{text: n.String(), numeric: true}
	return nil
}

// MarshalJSON writes the key back in the form it was read.
func (k Key) MarshalJSON() ([]byte, error) {
	if k.numeric {
		return []byte(k.text), nil
	}
	return json.Marshal(k.text)
}
