// Code generated by protoc-gen-go-grpc. DO NOT EDIT.
// versions:
// - protoc-gen-go-grpc v1.5.1
// - protoc             (unknown)
// source: provider.proto

package proto

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
	ProviderService_CorrectSpelling_FullMethodName = "/lumen.provider.v1.ProviderService/CorrectSpelling"
	ProviderService_ResolveIntents_FullMethodName  = "/lumen.provider.v1.ProviderService/ResolveIntents"
	ProviderService_CreateArticle_FullMethodName   = "/lumen.provider.v1.ProviderService/CreateArticle"
	ProviderService_CreateImage_FullMethodName     = "/lumen.provider.v1.ProviderService/CreateImage"
	ProviderService_SummarizeThread_FullMethodName = "/lumen.provider.v1.ProviderService/SummarizeThread"
	ProviderService_GenerateReply_FullMethodName   = "/lumen.provider.v1.ProviderService/GenerateReply"
)

// ProviderServiceClient is the client API for ProviderService service.
//
// For semantics around ctx use and closing/ending streaming RPCs, please refer to https://pkg.go.dev/google.golang.org/grpc/?tab=doc#ClientConn.NewStream.
//
// ProviderService is the contract between the engine and the external
// LLM provider service. All calls are unary; the engine applies its own
// retry and timeout policy around them.
type ProviderServiceClient interface {
	CorrectSpelling(ctx context.Context, in *CorrectSpellingRequest, opts ...grpc.CallOption) (*CorrectSpellingResponse, error)
	ResolveIntents(ctx context.Context, in *ResolveIntentsRequest, opts ...grpc.CallOption) (*ResolveIntentsResponse, error)
	CreateArticle(ctx context.Context, in *CreateArticleRequest, opts ...grpc.CallOption) (*CreateArticleResponse, error)
	CreateImage(ctx context.Context, in *CreateImageRequest, opts ...grpc.CallOption) (*CreateImageResponse, error)
	SummarizeThread(ctx context.Context, in *SummarizeThreadRequest, opts ...grpc.CallOption) (*SummarizeThreadResponse, error)
	GenerateReply(ctx context.Context, in *GenerateReplyRequest, opts ...grpc.CallOption) (*GenerateReplyResponse, error)
}

type providerServiceClient struct {
	cc grpc.ClientConnInterface
}

func NewProviderServiceClient(cc grpc.ClientConnInterface) ProviderServiceClient {
	return &providerServiceClient{cc}
}

func (c *providerServiceClient) CorrectSpelling(ctx context.Context, in *CorrectSpellingRequest, opts ...grpc.CallOption) (*CorrectSpellingResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(CorrectSpellingResponse)
	err := c.cc.Invoke(ctx, ProviderService_CorrectSpelling_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *providerServiceClient) ResolveIntents(ctx context.Context, in *ResolveIntentsRequest, opts ...grpc.CallOption) (*ResolveIntentsResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(ResolveIntentsResponse)
	err := c.cc.Invoke(ctx, ProviderService_ResolveIntents_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *providerServiceClient) CreateArticle(ctx context.Context, in *CreateArticleRequest, opts ...grpc.CallOption) (*CreateArticleResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(CreateArticleResponse)
	err := c.cc.Invoke(ctx, ProviderService_CreateArticle_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *providerServiceClient) CreateImage(ctx context.Context, in *CreateImageRequest, opts ...grpc.CallOption) (*CreateImageResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(CreateImageResponse)
	err := c.cc.Invoke(ctx, ProviderService_CreateImage_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *providerServiceClient) SummarizeThread(ctx context.Context, in *SummarizeThreadRequest, opts ...grpc.CallOption) (*SummarizeThreadResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(SummarizeThreadResponse)
	err := c.cc.Invoke(ctx, ProviderService_SummarizeThread_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *providerServiceClient) GenerateReply(ctx context.Context, in *GenerateReplyRequest, opts ...grpc.CallOption) (*GenerateReplyResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(GenerateReplyResponse)
	err := c.cc.Invoke(ctx, ProviderService_GenerateReply_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

// ProviderServiceServer is the server API for ProviderService service.
// All implementations must embed UnimplementedProviderServiceServer
// for forward compatibility.
//
// ProviderService is the contract between the engine and the external
// LLM provider service. All calls are unary; the engine applies its own
// retry and timeout policy around them.
type ProviderServiceServer interface {
	CorrectSpelling(context.Context, *CorrectSpellingRequest) (*CorrectSpellingResponse, error)
	ResolveIntents(context.Context, *ResolveIntentsRequest) (*ResolveIntentsResponse, error)
	CreateArticle(context.Context, *CreateArticleRequest) (*CreateArticleResponse, error)
	CreateImage(context.Context, *CreateImageRequest) (*CreateImageResponse, error)
	SummarizeThread(context.Context, *SummarizeThreadRequest) (*SummarizeThreadResponse, error)
	GenerateReply(context.Context, *GenerateReplyRequest) (*GenerateReplyResponse, error)
	mustEmbedUnimplementedProviderServiceServer()
}

// UnimplementedProviderServiceServer must be embedded to have
// forward compatible implementations.
//
// NOTE: this should be embedded by value instead of pointer to avoid a nil
// pointer dereference when methods are called.
type UnimplementedProviderServiceServer struct{}

func (UnimplementedProviderServiceServer) CorrectSpelling(context.Context, *CorrectSpellingRequest) (*CorrectSpellingResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method CorrectSpelling not implemented")
}
func (UnimplementedProviderServiceServer) ResolveIntents(context.Context, *ResolveIntentsRequest) (*ResolveIntentsResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method ResolveIntents not implemented")
}
func (UnimplementedProviderServiceServer) CreateArticle(context.Context, *CreateArticleRequest) (*CreateArticleResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method CreateArticle not implemented")
}
func (UnimplementedProviderServiceServer) CreateImage(context.Context, *CreateImageRequest) (*CreateImageResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method CreateImage not implemented")
}
func (UnimplementedProviderServiceServer) SummarizeThread(context.Context, *SummarizeThreadRequest) (*SummarizeThreadResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method SummarizeThread not implemented")
}
func (UnimplementedProviderServiceServer) GenerateReply(context.Context, *GenerateReplyRequest) (*GenerateReplyResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method GenerateReply not implemented")
}
func (UnimplementedProviderServiceServer) mustEmbedUnimplementedProviderServiceServer() {}
func (UnimplementedProviderServiceServer) testEmbeddedByValue()                         {}

// UnsafeProviderServiceServer may be embedded to opt out of forward compatibility for this service.
// Use of this interface is not recommended, as added methods to ProviderServiceServer will
// result in compilation errors.
type UnsafeProviderServiceServer interface {
	mustEmbedUnimplementedProviderServiceServer()
}

func RegisterProviderServiceServer(s grpc.ServiceRegistrar, srv ProviderServiceServer) {
	// If the following call pancis, it indicates UnimplementedProviderServiceServer was
	// embedded by pointer and is nil.  This will cause panics if an
	// unimplemented method is ever invoked, so we test this at initialization
	// time to prevent it from happening at runtime later due to I/O.
	if t, ok := srv.(interface{ testEmbeddedByValue() }); ok {
		t.testEmbeddedByValue()
	}
	s.RegisterService(&ProviderService_ServiceDesc, srv)
}

func _ProviderService_CorrectSpelling_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(CorrectSpellingRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(ProviderServiceServer).CorrectSpelling(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: ProviderService_CorrectSpelling_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(ProviderServiceServer).CorrectSpelling(ctx, req.(*CorrectSpellingRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _ProviderService_ResolveIntents_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(ResolveIntentsRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(ProviderServiceServer).ResolveIntents(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: ProviderService_ResolveIntents_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(ProviderServiceServer).ResolveIntents(ctx, req.(*ResolveIntentsRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _ProviderService_CreateArticle_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(CreateArticleRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(ProviderServiceServer).CreateArticle(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: ProviderService_CreateArticle_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(ProviderServiceServer).CreateArticle(ctx, req.(*CreateArticleRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _ProviderService_CreateImage_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(CreateImageRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(ProviderServiceServer).CreateImage(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: ProviderService_CreateImage_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(ProviderServiceServer).CreateImage(ctx, req.(*CreateImageRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _ProviderService_SummarizeThread_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(SummarizeThreadRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(ProviderServiceServer).SummarizeThread(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: ProviderService_SummarizeThread_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(ProviderServiceServer).SummarizeThread(ctx, req.(*SummarizeThreadRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _ProviderService_GenerateReply_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(GenerateReplyRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(ProviderServiceServer).GenerateReply(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: ProviderService_GenerateReply_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(ProviderServiceServer).GenerateReply(ctx, req.(*GenerateReplyRequest))
	}
	return interceptor(ctx, in, info, handler)
}

// ProviderService_ServiceDesc is the grpc.ServiceDesc for ProviderService service.
// It's only intended for direct use with grpc.RegisterService,
// and not to be introspected or modified (even as a copy)
var ProviderService_ServiceDesc = grpc.ServiceDesc{
	ServiceName: "lumen.provider.v1.ProviderService",
	HandlerType: (*ProviderServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		{
			MethodName: "CorrectSpelling",
			Handler:    _ProviderService_CorrectSpelling_Handler,
		},
		{
			MethodName: "ResolveIntents",
			Handler:    _ProviderService_ResolveIntents_Handler,
		},
		{
			MethodName: "CreateArticle",
			Handler:    _ProviderService_CreateArticle_Handler,
		},
		{
			MethodName: "CreateImage",
			Handler:    _ProviderService_CreateImage_Handler,
		},
		{
			MethodName: "SummarizeThread",
			Handler:    _ProviderService_SummarizeThread_Handler,
		},
		{
			MethodName: "GenerateReply",
			Handler:    _ProviderService_GenerateReply_Handler,
		},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "provider.proto",
}
