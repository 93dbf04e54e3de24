/*
Package rpc defines the gRPC surface of the POS backend without generated
code: plain Go message structs travel through the registered JSON codec,
and each service is described by a hand-written grpc.ServiceDesc.

Servers implement the *Server interfaces; the gateway talks to them through
the *Client interfaces returned by the New*Client constructors.
*/
package rpc

import (
	"context"

	"google.golang.org/grpc"
)

// unary builds the method descriptor for one request/response call.
func unary[Srv any, Req any, Resp any](service, method string, call func(Srv, context.Context, *Req) (*Resp, error)) grpc.MethodDesc {
	fullMethod := "/" + service + "/" + method
	return grpc.MethodDesc{
		MethodName: method,
		Handler: func(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
			in := new(Req)
			if err := dec(in); err != nil {
				return nil, err
			}
			if interceptor == nil {
				return call(srv.(Srv), ctx, in)
			}
			info := &grpc.UnaryServerInfo{Server: srv, FullMethod: fullMethod}
			handler := func(ctx context.Context, req any) (any, error) {
				return call(srv.(Srv), ctx, req.(*Req))
			}
			return interceptor(ctx, in, info, handler)
		},
	}
}

// invoke performs a unary call with the JSON content-subtype and restores
// domain errors from the returned status.
func invoke[Resp any](ctx context.Context, cc grpc.ClientConnInterface, service, method string, in any, opts []grpc.CallOption) (*Resp, error) {
	out := new(Resp)
	opts = append([]grpc.CallOption{grpc.CallContentSubtype(CodecName)}, opts...)
	if err := cc.Invoke(ctx, "/"+service+"/"+method, in, out, opts...); err != nil {
		return nil, FromStatus(err)
	}
	return out, nil
}
