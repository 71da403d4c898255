// Package proto contains the gRPC contract for the LLM provider service.
//
// Run `go generate ./proto` after editing provider.proto. Requires protoc
// with protoc-gen-go and protoc-gen-go-grpc on PATH.
package proto

//go:generate protoc --go_out=. --go_opt=paths=source_relative --go-grpc_out=. --go-grpc_opt=paths=source_relative provider.proto
