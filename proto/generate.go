// Package proto carries the executor service contract. The Go bindings
// (executor.pb.go, executor_grpc.pb.go) are generated at build time and
// are not committed; regenerate after editing executor.proto.
package proto

//go:generate protoc --go_out=. --go_opt=paths=source_relative --go-grpc_out=. --go-grpc_opt=paths=source_relative executor.proto
