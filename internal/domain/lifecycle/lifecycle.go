// Package lifecycle holds the shared startup and shutdown limits of the service.
package lifecycle

import "time"

// DefaultTimeout bounds each start or stop hook, such as the database ping
// and the HTTP server shutdown.
const DefaultTimeout = 15 * time.Second
