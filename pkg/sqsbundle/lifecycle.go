package sqsbundle

import "context"

// Managed is a unit whose lifetime is driven by the hosting application.
// Start must return promptly; long-running work belongs in a goroutine owned
// by the unit. Stop must release that work before returning.
type Managed interface {
	Start(ctx context.Context) error
	Stop(ctx context.Context) error
}

// HealthCheck reports the health of one component. A nil return means
// healthy; a non-nil error carries the reason the component is unhealthy.
// Implementations must be read-only and safe for frequent concurrent calls.
type HealthCheck func(ctx context.Context) error

// Lifecycle is the supervisor capability the host application injects into
// the bundle. The host owns the invocation timing: managed units are started
// during application startup, stopped on shutdown, and health checks are
// polled by whatever health surface the host exposes.
type Lifecycle interface {
	Manage(m Managed)
	RegisterHealthCheck(name string, check HealthCheck)
}
