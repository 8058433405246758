// Package lifecycle holds shared process lifecycle constants.
package lifecycle

import "time"

// DefaultTimeout bounds graceful shutdown of every delivery server.
const DefaultTimeout = 10 * time.Second
