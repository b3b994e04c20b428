package constvars

import "time"

// UsecaseTimeout bounds every usecase call made by an HTTP handler. Schedule
// locks must outlive it.
const UsecaseTimeout = 10 * time.Second
