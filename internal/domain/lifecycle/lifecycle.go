// Package lifecycle holds shared process lifecycle constants.
package lifecycle

import "time"

// DefaultTimeout bounds every start/stop hook (DB ping, HTTP shutdown).
const DefaultTimeout = 10 * time.Second
