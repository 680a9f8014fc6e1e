// Package pb contains the generated protobuf and gRPC types for the alarm API.
//
// Regenerate with:
//
//	protoc -I api --go_out=. --go_opt=module=github.com/oshokin/alarm-bot \
//	  --go-grpc_out=. --go-grpc_opt=module=github.com/oshokin/alarm-bot \
//	  api/alarm/v1/alarm.proto
package pb
