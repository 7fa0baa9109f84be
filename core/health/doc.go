// Package health provides handlers for service health probes.
//
// Handlers:
//   - Liveness: the process is running, no dependency checks
//   - Readiness: every dependency check passes
//   - NoContent: 204 with no body
//
// Usage:
//
//	routes := route.NewRegistry()
//	routes.Get("/health/live", health.Liveness)
//	routes.Get("/health/ready", health.Readiness(log, db.PingContext))
//	routes.Get("/ping", health.NoContent)
//
// Dependency checks follow the func(context.Context) error signature.
package health
