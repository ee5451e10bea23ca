package rpcservice

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/google/uuid"
	"github.com/jhump/protoreflect/desc"
	"github.com/jhump/protoreflect/dynamic"
	"google.golang.org/grpc"

	"github.com/arisgo/ariscore/internal/audit"
	"github.com/arisgo/ariscore/internal/synparse"
	"github.com/arisgo/ariscore/pkg/expr"
	"github.com/arisgo/ariscore/pkg/normalize"
	"github.com/arisgo/ariscore/pkg/unify"
)

// Server hosts the dynamically-described Core service. The zero value is
// not usable; build one with New.
type Server struct {
	grpcServer *grpc.Server
	fd         *desc.FileDescriptor
	sd         *desc.ServiceDescriptor

	// AuditLog, when non-nil, receives a trace of every Normalize call the
	// way cmd/ariscore's --audit flag does locally.
	AuditLog *audit.Log
}

// New builds a Server with the Core service registered but not yet serving.
func New() (*Server, error) {
	fd, err := loadFileDescriptor()
	if err != nil {
		return nil, err
	}
	sd, err := findService(fd, "ariscore.Core")
	if err != nil {
		return nil, err
	}

	s := &Server{fd: fd, sd: sd}
	s.grpcServer = grpc.NewServer()
	s.grpcServer.RegisterService(s.serviceDesc(), s)
	return s, nil
}

// GRPCServer returns the underlying *grpc.Server for callers that want to
// Serve it themselves (tests, or a caller that also wants reflection/health
// services registered).
func (s *Server) GRPCServer() *grpc.Server {
	return s.grpcServer
}

func (s *Server) serviceDesc() *grpc.ServiceDesc {
	gd := &grpc.ServiceDesc{
		ServiceName: s.sd.GetFullyQualifiedName(),
		HandlerType: (*interface{})(nil),
		Metadata:    protoFileName,
	}

	for _, method := range s.sd.GetMethods() {
		md := method
		gd.Methods = append(gd.Methods, grpc.MethodDesc{
			MethodName: md.GetName(),
			Handler: func(srv interface{}, ctx context.Context, dec func(interface{}) error, _ grpc.UnaryServerInterceptor) (interface{}, error) {
				self := srv.(*Server)
				return self.handleUnary(ctx, md, dec)
			},
		})
	}
	return gd
}

func (s *Server) handleUnary(ctx context.Context, md *desc.MethodDescriptor, dec func(interface{}) error) (interface{}, error) {
	reqID := uuid.NewString()

	in := dynamic.NewMessage(md.GetInputType())
	if err := dec(in); err != nil {
		return nil, fmt.Errorf("rpcservice: decoding request: %w", err)
	}

	out := dynamic.NewMessage(md.GetOutputType())

	var err error
	switch md.GetName() {
	case "Normalize":
		err = s.handleNormalize(ctx, in, out)
	case "Unify":
		err = s.handleUnify(in, out)
	default:
		err = fmt.Errorf("rpcservice: unknown method %q", md.GetName())
	}

	if err != nil {
		log.Printf("rpcservice: request %s (%s) failed: %v", reqID, md.GetName(), err)
		return nil, err
	}
	return out, nil
}

func (s *Server) handleNormalize(ctx context.Context, in, out *dynamic.Message) error {
	formula, _ := in.TryGetFieldByName("formula")
	passNames, _ := in.TryGetFieldByName("passes")

	e, err := synparse.Parse(formula.(string))
	if err != nil {
		return err
	}

	passes := normalize.DefaultPipeline()
	if names, ok := passNames.([]interface{}); ok && len(names) > 0 {
		passes = passes[:0]
		for _, n := range names {
			p, found := normalize.ByName(n.(string))
			if !found {
				return fmt.Errorf("rpcservice: unknown pass %q", n)
			}
			passes = append(passes, p)
		}
	}

	var (
		result  expr.Expression
		changed []string
		session string
	)

	if s.AuditLog != nil {
		result, session, err = s.AuditLog.RunAudited(ctx, e, passes, time.Now())
		if err != nil {
			return err
		}
		trace, err := s.AuditLog.Trace(ctx, session)
		if err != nil {
			return err
		}
		for _, step := range trace {
			if step.Changed {
				changed = append(changed, step.PassName)
			}
		}
	} else {
		result, changed = normalize.Run(e, passes)
	}

	out.SetFieldByName("result", result.String())
	changedIface := make([]interface{}, len(changed))
	for i, c := range changed {
		changedIface[i] = c
	}
	out.SetFieldByName("changed_passes", changedIface)
	out.SetFieldByName("session_id", session)
	return nil
}

func (s *Server) handleUnify(in, out *dynamic.Message) error {
	leftSrc, _ := in.TryGetFieldByName("left")
	rightSrc, _ := in.TryGetFieldByName("right")

	left, err := synparse.Parse(leftSrc.(string))
	if err != nil {
		return err
	}
	right, err := synparse.Parse(rightSrc.(string))
	if err != nil {
		return err
	}

	sub, err := unify.Unify([]unify.Constraint{{Left: left, Right: right}})
	if err != nil {
		out.SetFieldByName("ok", false)
		out.SetFieldByName("error", err.Error())
		return nil
	}

	out.SetFieldByName("ok", true)
	bindings := make([]interface{}, len(sub))
	for i, p := range sub {
		bindings[i] = fmt.Sprintf("%s = %s", p.Name, p.Value.String())
	}
	out.SetFieldByName("bindings", bindings)
	return nil
}
