// Package health provides HTTP handlers for service health probes.
//
//   - Liveness: process is running, no dependency checks
//   - Readiness: every dependency check passes
//   - NoContent: 204 for minimal overhead
//
// Dependency checks use the func(context.Context) error signature, so
// redis.Healthcheck plugs in directly.
package health
