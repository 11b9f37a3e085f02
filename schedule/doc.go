/*
Package schedule models a stop-schedule snapshot and loads it from disk or any io.Reader.

A snapshot is a single JSON document:

	{
	  "stop-schedule": {
	    "route-schedules": [
	      {
	        "route": {"key": "BLUE", "name": "BLUE"},
	        "scheduled-stops": [
	          {
	            "key": "18223380-34",
	            "trip-key": "18223380",
	            "times": {"departure": {"estimated": "2024-01-15T09:00:00", "scheduled": "2024-01-15T08:59:00"}},
	            "variant": {"name": "To University of Manitoba"},
	            "bus": {"key": "521"},
	            "cancelled": false
	          }
	        ]
	      }
	    ]
	  }
	}

Fields are decoded as pointers so that a missing key can be reported as a SchemaError
instead of silently turning into a zero value. Identifiers that feeds publish either as
strings or as numbers are decoded into Key, which re-encodes them exactly as read.

Gzip-compressed snapshots are detected by their magic bytes and decompressed on the fly.
*/
package schedule
