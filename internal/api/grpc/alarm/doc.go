// Package alarm implements the gRPC transport for the alarm scheduler.
//
// It validates requests, converts between protobuf messages and domain
// types, and maps parse failures to InvalidArgument with the localized
// message. Cancel never reveals whether an alarm exists.
package alarm
