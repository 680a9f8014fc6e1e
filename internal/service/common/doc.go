// Package common holds helpers shared by the client commands.
//
// It provides a lightweight gRPC client wrapper with timeouts and a helper
// that derives a default owner id from the local user and host.
//
//nolint:revive,nolintlint // Package name "common" is intentional for shared helpers.
package common
