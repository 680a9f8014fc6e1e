// Package server wires and runs alarm-server: settings, delivery adapters,
// event publishing, the scheduler loop, the gRPC API and the metrics
// endpoint, all stopped together when the context is cancelled.
package server
