// Code generated by protoc-gen-go-grpc. DO NOT EDIT.
// versions:
// - protoc-gen-go-grpc v1.5.1
// - protoc             (unknown)
// source: performance/v1/performance.proto

package performancev1

import (
	context "context"
	grpc "google.golang.org/grpc"
	codes "google.golang.org/grpc/codes"
	status "google.golang.org/grpc/status"
)

// This is a compile-time assertion to ensure that this generated file
// is compatible with the grpc package it is being compiled against.
// Requires gRPC-Go v1.64.0 or later.
const _ = grpc.SupportPackageIsVersion9

const (
	PerformanceService_GetPerformance_FullMethodName     = "/performance.v1.PerformanceService/GetPerformance"
	PerformanceService_GetChart_FullMethodName           = "/performance.v1.PerformanceService/GetChart"
	PerformanceService_GetLeaderboard_FullMethodName     = "/performance.v1.PerformanceService/GetLeaderboard"
	PerformanceService_RefreshLeaderboard_FullMethodName = "/performance.v1.PerformanceService/RefreshLeaderboard"
	PerformanceService_InvalidateEntity_FullMethodName   = "/performance.v1.PerformanceService/InvalidateEntity"
)

// PerformanceServiceClient is the client API for PerformanceService service.
//
// For semantics around ctx use and closing/ending streaming RPCs, please refer to https://pkg.go.dev/google.golang.org/grpc/?tab=doc#ClientConn.NewStream.
//
// PerformanceService is the presentation boundary of the performance core.
// Decimals travel as strings to avoid float rounding on the wire.
type PerformanceServiceClient interface {
	// GetPerformance returns the canonical Modified-Dietz headline for an
	// entity and period (tier 2, or tier 3 when live=true).
	GetPerformance(ctx context.Context, in *GetPerformanceRequest, opts ...grpc.CallOption) (*GetPerformanceResponse, error)
	// GetChart returns the down-sampled chart series plus the canonical
	// headline for the identical window.
	GetChart(ctx context.Context, in *GetChartRequest, opts ...grpc.CallOption) (*GetChartResponse, error)
	// GetLeaderboard returns the shared tier-1 payload.
	GetLeaderboard(ctx context.Context, in *GetLeaderboardRequest, opts ...grpc.CallOption) (*GetLeaderboardResponse, error)
	// RefreshLeaderboard runs the market-close refresh cycle over the given
	// entities with per-entity failure isolation.
	RefreshLeaderboard(ctx context.Context, in *RefreshLeaderboardRequest, opts ...grpc.CallOption) (*RefreshLeaderboardResponse, error)
	// InvalidateEntity drops every cached payload for an entity after a
	// snapshot correction.
	InvalidateEntity(ctx context.Context, in *InvalidateEntityRequest, opts ...grpc.CallOption) (*InvalidateEntityResponse, error)
}

type performanceServiceClient struct {
	cc grpc.ClientConnInterface
}

func NewPerformanceServiceClient(cc grpc.ClientConnInterface) PerformanceServiceClient {
	return &performanceServiceClient{cc}
}

func (c *performanceServiceClient) GetPerformance(ctx context.Context, in *GetPerformanceRequest, opts ...grpc.CallOption) (*GetPerformanceResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(GetPerformanceResponse)
	err := c.cc.Invoke(ctx, PerformanceService_GetPerformance_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *performanceServiceClient) GetChart(ctx context.Context, in *GetChartRequest, opts ...grpc.CallOption) (*GetChartResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(GetChartResponse)
	err := c.cc.Invoke(ctx, PerformanceService_GetChart_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *performanceServiceClient) GetLeaderboard(ctx context.Context, in *GetLeaderboardRequest, opts ...grpc.CallOption) (*GetLeaderboardResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(GetLeaderboardResponse)
	err := c.cc.Invoke(ctx, PerformanceService_GetLeaderboard_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *performanceServiceClient) RefreshLeaderboard(ctx context.Context, in *RefreshLeaderboardRequest, opts ...grpc.CallOption) (*RefreshLeaderboardResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(RefreshLeaderboardResponse)
	err := c.cc.Invoke(ctx, PerformanceService_RefreshLeaderboard_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *performanceServiceClient) InvalidateEntity(ctx context.Context, in *InvalidateEntityRequest, opts ...grpc.CallOption) (*InvalidateEntityResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(InvalidateEntityResponse)
	err := c.cc.Invoke(ctx, PerformanceService_InvalidateEntity_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

// PerformanceServiceServer is the server API for PerformanceService service.
// All implementations must embed UnimplementedPerformanceServiceServer
// for forward compatibility.
//
// PerformanceService is the presentation boundary of the performance core.
// Decimals travel as strings to avoid float rounding on the wire.
type PerformanceServiceServer interface {
	// GetPerformance returns the canonical Modified-Dietz headline for an
	// entity and period (tier 2, or tier 3 when live=true).
	GetPerformance(context.Context, *GetPerformanceRequest) (*GetPerformanceResponse, error)
	// GetChart returns the down-sampled chart series plus the canonical
	// headline for the identical window.
	GetChart(context.Context, *GetChartRequest) (*GetChartResponse, error)
	// GetLeaderboard returns the shared tier-1 payload.
	GetLeaderboard(context.Context, *GetLeaderboardRequest) (*GetLeaderboardResponse, error)
	// RefreshLeaderboard runs the market-close refresh cycle over the given
	// entities with per-entity failure isolation.
	RefreshLeaderboard(context.Context, *RefreshLeaderboardRequest) (*RefreshLeaderboardResponse, error)
	// InvalidateEntity drops every cached payload for an entity after a
	// snapshot correction.
	InvalidateEntity(context.Context, *InvalidateEntityRequest) (*InvalidateEntityResponse, error)
	mustEmbedUnimplementedPerformanceServiceServer()
}

// UnimplementedPerformanceServiceServer must be embedded to have
// forward compatible implementations.
//
// NOTE: this should be embedded by value instead of pointer to avoid a nil
// pointer dereference when methods are called.
type UnimplementedPerformanceServiceServer struct{}

func (UnimplementedPerformanceServiceServer) GetPerformance(context.Context, *GetPerformanceRequest) (*GetPerformanceResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method GetPerformance not implemented")
}
func (UnimplementedPerformanceServiceServer) GetChart(context.Context, *GetChartRequest) (*GetChartResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method GetChart not implemented")
}
func (UnimplementedPerformanceServiceServer) GetLeaderboard(context.Context, *GetLeaderboardRequest) (*GetLeaderboardResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method GetLeaderboard not implemented")
}
func (UnimplementedPerformanceServiceServer) RefreshLeaderboard(context.Context, *RefreshLeaderboardRequest) (*RefreshLeaderboardResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method RefreshLeaderboard not implemented")
}
func (UnimplementedPerformanceServiceServer) InvalidateEntity(context.Context, *InvalidateEntityRequest) (*InvalidateEntityResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method InvalidateEntity not implemented")
}
func (UnimplementedPerformanceServiceServer) mustEmbedUnimplementedPerformanceServiceServer() {}
func (UnimplementedPerformanceServiceServer) testEmbeddedByValue()                            {}

// UnsafePerformanceServiceServer may be embedded to opt out of forward compatibility for this service.
// Use of this interface is not recommended, as added methods to PerformanceServiceServer will
// result in compilation errors.
type UnsafePerformanceServiceServer interface {
	mustEmbedUnimplementedPerformanceServiceServer()
}

func RegisterPerformanceServiceServer(s grpc.ServiceRegistrar, srv PerformanceServiceServer) {
	// If the following call pancis, it indicates UnimplementedPerformanceServiceServer was
	// embedded by pointer and is nil.  This will cause panics if an
	// unimplemented method is ever invoked, so we test this at initialization
	// time to prevent it from happening at runtime later due to I/O.
	if t, ok := srv.(interface{ testEmbeddedByValue() }); ok {
		t.testEmbeddedByValue()
	}
	s.RegisterService(&PerformanceService_ServiceDesc, srv)
}

func _PerformanceService_GetPerformance_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(GetPerformanceRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(PerformanceServiceServer).GetPerformance(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: PerformanceService_GetPerformance_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(PerformanceServiceServer).GetPerformance(ctx, req.(*GetPerformanceRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _PerformanceService_GetChart_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(GetChartRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(PerformanceServiceServer).GetChart(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: PerformanceService_GetChart_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(PerformanceServiceServer).GetChart(ctx, req.(*GetChartRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _PerformanceService_GetLeaderboard_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(GetLeaderboardRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(PerformanceServiceServer).GetLeaderboard(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: PerformanceService_GetLeaderboard_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(PerformanceServiceServer).GetLeaderboard(ctx, req.(*GetLeaderboardRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _PerformanceService_RefreshLeaderboard_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(RefreshLeaderboardRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(PerformanceServiceServer).RefreshLeaderboard(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: PerformanceService_RefreshLeaderboard_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(PerformanceServiceServer).RefreshLeaderboard(ctx, req.(*RefreshLeaderboardRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _PerformanceService_InvalidateEntity_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(InvalidateEntityRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(PerformanceServiceServer).InvalidateEntity(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: PerformanceService_InvalidateEntity_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(PerformanceServiceServer).InvalidateEntity(ctx, req.(*InvalidateEntityRequest))
	}
	return interceptor(ctx, in, info, handler)
}

// PerformanceService_ServiceDesc is the grpc.ServiceDesc for PerformanceService service.
// It's only intended for direct use with grpc.RegisterService,
// and not to be introspected or modified (even as a copy)
var PerformanceService_ServiceDesc = grpc.ServiceDesc{
	ServiceName: "performance.v1.PerformanceService",
	HandlerType: (*PerformanceServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		{
			MethodName: "GetPerformance",
			Handler:    _PerformanceService_GetPerformance_Handler,
		},
		{
			MethodName: "GetChart",
			Handler:    _PerformanceService_GetChart_Handler,
		},
		{
			MethodName: "GetLeaderboard",
			Handler:    _PerformanceService_GetLeaderboard_Handler,
		},
		{
			MethodName: "RefreshLeaderboard",
			Handler:    _PerformanceService_RefreshLeaderboard_Handler,
		},
		{
			MethodName: "InvalidateEntity",
			Handler:    _PerformanceService_InvalidateEntity_Handler,
		},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "performance/v1/performance.proto",
}
