// Package comms provides the messages and services workers and the master use to communicate.
//
// These bindings are maintained by hand against comms.proto, in the shape
// protoc-gen-go emits, so the build doesn't depend on protoc. The proto
// runtime marshals them through their field tags.
package comms

import (
	"context"

	"github.com/golang/protobuf/proto"
	"github.com/golang/protobuf/ptypes/empty"
	"google.golang.org/grpc"
)

// WorkerLink tells the master which port a worker will serve trace calls on.
type WorkerLink struct {
	Port uint32 `protobuf:"varint,1,opt,name=port,proto3" json:"port,omitempty"`
}

func (m *WorkerLink) Reset()         { *m = WorkerLink{} }
func (m *WorkerLink) String() string { return proto.CompactTextString(m) }
func (*WorkerLink) ProtoMessage()    {}

// GetPort returns the worker's trace port.
func (m *WorkerLink) GetPort() uint32 {
	if m != nil {
		return m.Port
	}
	return 0
}

// MasterScene carries everything a worker needs to render bands of the frame.
type MasterScene struct {
	Scene []byte `protobuf:"bytes,1,opt,name=scene,proto3" json:"scene,omitempty"`
}

func (m *MasterScene) Reset()         { *m = MasterScene{} }
func (m *MasterScene) String() string { return proto.CompactTextString(m) }
func (*MasterScene) ProtoMessage()    {}

// GetScene returns the packed scene bytes.
func (m *MasterScene) GetScene() []byte {
	if m != nil {
		return m.Scene
	}
	return nil
}

// WorkOrder names a band of whole image rows to trace.
type WorkOrder struct {
	Y      uint32 `protobuf:"varint,1,opt,name=y,proto3" json:"y,omitempty"`
	Height uint32 `protobuf:"varint,2,opt,name=height,proto3" json:"height,omitempty"`
}

func (m *WorkOrder) Reset()         { *m = WorkOrder{} }
func (m *WorkOrder) String() string { return proto.CompactTextString(m) }
func (*WorkOrder) ProtoMessage()    {}

// GetY returns the topmost row of the band.
func (m *WorkOrder) GetY() uint32 {
	if m != nil {
		return m.Y
	}
	return 0
}

// GetHeight returns the number of rows in the band.
func (m *WorkOrder) GetHeight() uint32 {
	if m != nil {
		return m.Height
	}
	return 0
}

// TraceResults carries a traced band's pixels.
type TraceResults struct {
	Pixels []byte `protobuf:"bytes,1,opt,name=pixels,proto3" json:"pixels,omitempty"`
}

func (m *TraceResults) Reset()         { *m = TraceResults{} }
func (m *TraceResults) String() string { return proto.CompactTextString(m) }
func (*TraceResults) ProtoMessage()    {}

// GetPixels returns the packed pixel bytes.
func (m *TraceResults) GetPixels() []byte {
	if m != nil {
		return m.Pixels
	}
	return nil
}

var (
	_ proto.Message = (*WorkerLink)(nil)
	_ proto.Message = (*MasterScene)(nil)
	_ proto.Message = (*WorkOrder)(nil)
	_ proto.Message = (*TraceResults)(nil)
)

// RegistrationClient is the client API for the Registration service.
type RegistrationClient interface {
	Register(ctx context.Context, in *WorkerLink, opts ...grpc.CallOption) (*MasterScene, error)
}

type registrationClient struct {
	cc *grpc.ClientConn
}

// NewRegistrationClient returns a client which registers workers over cc.
func NewRegistrationClient(cc *grpc.ClientConn) RegistrationClient {
	return &registrationClient{cc}
}

func (c *registrationClient) Register(ctx context.Context, in *WorkerLink, opts ...grpc.CallOption) (*MasterScene, error) {
	out := new(MasterScene)
	if err := c.cc.Invoke(ctx, "/comms.Registration/Register", in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

// RegistrationServer is the server API for the Registration service.
type RegistrationServer interface {
	Register(context.Context, *WorkerLink) (*MasterScene, error)
}

// RegisterRegistrationServer hooks a RegistrationServer implementation up to a gRPC server.
func RegisterRegistrationServer(s *grpc.Server, srv RegistrationServer) {
	s.RegisterService(&_Registration_serviceDesc, srv)
}

func _Registration_Register_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(WorkerLink)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(RegistrationServer).Register(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: "/comms.Registration/Register",
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(RegistrationServer).Register(ctx, req.(*WorkerLink))
	}
	return interceptor(ctx, in, info, handler)
}

var _Registration_serviceDesc = grpc.ServiceDesc{
	ServiceName: "comms.Registration",
	HandlerType: (*RegistrationServer)(nil),
	Methods: []grpc.MethodDesc{
		{
			MethodName: "Register",
			Handler:    _Registration_Register_Handler,
		},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "shared/comms/comms.proto",
}

// TraceClient is the client API for the Trace service.
type TraceClient interface {
	BulkTrace(ctx context.Context, in *WorkOrder, opts ...grpc.CallOption) (*TraceResults, error)
	Heartbeat(ctx context.Context, in *empty.Empty, opts ...grpc.CallOption) (*empty.Empty, error)
}

type traceClient struct {
	cc *grpc.ClientConn
}

// NewTraceClient returns a client which sends work orders and heartbeats over cc.
func NewTraceClient(cc *grpc.ClientConn) TraceClient {
	return &traceClient{cc}
}

func (c *traceClient) BulkTrace(ctx context.Context, in *WorkOrder, opts ...grpc.CallOption) (*TraceResults, error) {
	out := new(TraceResults)
	if err := c.cc.Invoke(ctx, "/comms.Trace/BulkTrace", in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *traceClient) Heartbeat(ctx context.Context, in *empty.Empty, opts ...grpc.CallOption) (*empty.Empty, error) {
	out := new(empty.Empty)
	if err := c.cc.Invoke(ctx, "/comms.Trace/Heartbeat", in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

// TraceServer is the server API for the Trace service.
type TraceServer interface {
	BulkTrace(context.Context, *WorkOrder) (*TraceResults, error)
	Heartbeat(context.Context, *empty.Empty) (*empty.Empty, error)
}

// RegisterTraceServer hooks a TraceServer implementation up to a gRPC server.
func RegisterTraceServer(s *grpc.Server, srv TraceServer) {
	s.RegisterService(&_Trace_serviceDesc, srv)
}

func _Trace_BulkTrace_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(WorkOrder)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(TraceServer).BulkTrace(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: "/comms.Trace/BulkTrace",
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(TraceServer).BulkTrace(ctx, req.(*WorkOrder))
	}
	return interceptor(ctx, in, info, handler)
}

func _Trace_Heartbeat_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(empty.Empty)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(TraceServer).Heartbeat(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: "/comms.Trace/Heartbeat",
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(TraceServer).Heartbeat(ctx, req.(*empty.Empty))
	}
	return interceptor(ctx, in, info, handler)
}

var _Trace_serviceDesc = grpc.ServiceDesc{
	ServiceName: "comms.Trace",
	HandlerType: (*TraceServer)(nil),
	Methods: []grpc.MethodDesc{
		{
			MethodName: "BulkTrace",
			Handler:    _Trace_BulkTrace_Handler,
		},
		{
			MethodName: "Heartbeat",
			Handler:    _Trace_Heartbeat_Handler,
		},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "shared/comms/comms.proto",
}
