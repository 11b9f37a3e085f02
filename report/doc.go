// Package report turns a stop-schedule snapshot into the list of upcoming stops:
// it keeps the allow-listed routes, flattens their scheduled stops, orders them by
// estimated departure and keeps the soonest few.
//
// Each step is a plain function so it can be exercised on its own; Build composes them.
package report
