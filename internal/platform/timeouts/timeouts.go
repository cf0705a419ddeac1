// Package timeouts defines shared timeout constants used by commands.
package timeouts

import "time"

// TelemetryShutdown caps how long a command waits for pending spans to flush
// after its run loop returns.
const TelemetryShutdown = 5 * time.Second
