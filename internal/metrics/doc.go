// Package metrics defines the Prometheus collectors of alarm-server and the
// HTTP handler that exposes them together with a liveness probe.
package metrics
