// Package rpcservice exposes pkg/normalize and pkg/unify over gRPC without a
// protoc-generated stub: the service's wire schema is parsed from an
// in-memory .proto string at startup and served through dynamic messages,
// exactly the way funxy's own internal/evaluator/builtins_grpc.go drives a
// script-defined gRPC service. Here the "script" is fixed at compile time
// instead of supplied by a Funxy program.
package rpcservice

import (
	"fmt"

	"github.com/jhump/protoreflect/desc"
	"github.com/jhump/protoreflect/desc/protoparse"
)

const protoFileName = "ariscore.proto"

const protoSource = `
syntax = "proto3";

package ariscore;

message NormalizeRequest {
  string formula = 1;
  repeated string passes = 2;
}

message NormalizeResponse {
  string result = 1;
  repeated string changed_passes = 2;
  string session_id = 3;
}

message UnifyRequest {
  string left = 1;
  string right = 2;
}

message UnifyResponse {
  bool ok = 1;
  repeated string bindings = 2;
  string error = 3;
}

service Core {
  rpc Normalize(NormalizeRequest) returns (NormalizeResponse);
  rpc Unify(UnifyRequest) returns (UnifyResponse);
}
`

// loadFileDescriptor parses the schema above into a FileDescriptor, the way
// builtinGrpcLoadProto parses a caller-supplied .proto file, except the
// source here comes from an in-memory accessor rather than disk.
func loadFileDescriptor() (*desc.FileDescriptor, error) {
	parser := protoparse.Parser{
		Accessor: protoparse.FileContentsFromMap(map[string]string{
			protoFileName: protoSource,
		}),
	}
	fds, err := parser.ParseFiles(protoFileName)
	if err != nil {
		return nil, fmt.Errorf("rpcservice: parsing schema: %w", err)
	}
	if len(fds) != 1 {
		return nil, fmt.Errorf("rpcservice: expected 1 file descriptor, got %d", len(fds))
	}
	return fds[0], nil
}

func findService(fd *desc.FileDescriptor, name string) (*desc.ServiceDescriptor, error) {
	sd := fd.FindService(name)
	if sd == nil {
		return nil, fmt.Errorf("rpcservice: service %q not found in schema", name)
	}
	return sd, nil
}
