// Package lifecycle holds shared constants for start/stop hooks.
package lifecycle

import "time"

// DefaultTimeout bounds every fx start and stop hook.
const DefaultTimeout = 10 * time.Second
