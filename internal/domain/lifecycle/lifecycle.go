// Package lifecycle holds process-wide timing constants shared by fx hooks.
package lifecycle

import "time"

// DefaultTimeout bounds every OnStart/OnStop hook (DB ping, HTTP shutdown, publisher close).
const DefaultTimeout = 10 * time.Second
