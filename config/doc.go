// Package config handles application configuration loading and validation.
//
// Configuration starts from built-in defaults and is then overlaid, in order, by an
// optional config.yml, an optional .env file and STOPREPORT_* environment variables.
// Command-line flags are applied last by the caller. The result is validated using
// struct tags.
//
// The route allow-list and the number of stops shown are fixed and not configurable.
package config
