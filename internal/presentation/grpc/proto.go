package grpc

// proto.go defines the gRPC server interface derived from
// pricing/v1/pricing.proto. This file serves as a stand-in for
// buf-generated code; the JSON codec in json_codec.go carries the message
// payloads until proto definitions are generated.

import (
	"context"

	grpclib "google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/Smannenbach/Loan-Daddy-LOS-sub000/internal/application/dto"
)

// Message aliases: the wire shapes are the application DTOs until generated
// proto types replace them.
type (
	GetPricingRequest        = dto.GetPricingRequest
	GetPricingResponse       = dto.PricingResultResponse
	GetRatesByLenderRequest  = dto.GetRatesByLenderRequest
	GetRatesByLenderResponse = dto.RatesByLenderResponse
	AmortizeRequest          = dto.AmortizeRequest
	AmortizeResponse         = dto.AmortizationResponse
	CalculateFeesRequest     = dto.CalculateFeesRequest
	CalculateFeesResponse    = dto.FeeScheduleResponse
	CalculateRatiosRequest   = dto.CalculateRatiosRequest
	CalculateRatiosResponse  = dto.CalculateRatiosResponse
	SyncRatesRequest         = dto.SyncRatesRequest
	SyncRatesResponse        = dto.SyncRatesResponse
)

// PricingServiceServer is the server API for PricingService.
type PricingServiceServer interface {
	GetPricing(context.Context, *GetPricingRequest) (*GetPricingResponse, error)
	GetRatesByLender(context.Context, *GetRatesByLenderRequest) (*GetRatesByLenderResponse, error)
	Amortize(context.Context, *AmortizeRequest) (*AmortizeResponse, error)
	CalculateFees(context.Context, *CalculateFeesRequest) (*CalculateFeesResponse, error)
	CalculateRatios(context.Context, *CalculateRatiosRequest) (*CalculateRatiosResponse, error)
	SyncRates(context.Context, *SyncRatesRequest) (*SyncRatesResponse, error)
	mustEmbedUnimplementedPricingServiceServer()
}

// UnimplementedPricingServiceServer provides forward-compatible default implementations.
type UnimplementedPricingServiceServer struct{}

func (UnimplementedPricingServiceServer) GetPricing(context.Context, *GetPricingRequest) (*GetPricingResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method GetPricing not implemented")
}
func (UnimplementedPricingServiceServer) GetRatesByLender(context.Context, *GetRatesByLenderRequest) (*GetRatesByLenderResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method GetRatesByLender not implemented")
}
func (UnimplementedPricingServiceServer) Amortize(context.Context, *AmortizeRequest) (*AmortizeResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method Amortize not implemented")
}
func (UnimplementedPricingServiceServer) CalculateFees(context.Context, *CalculateFeesRequest) (*CalculateFeesResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method CalculateFees not implemented")
}
func (UnimplementedPricingServiceServer) CalculateRatios(context.Context, *CalculateRatiosRequest) (*CalculateRatiosResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method CalculateRatios not implemented")
}
func (UnimplementedPricingServiceServer) SyncRates(context.Context, *SyncRatesRequest) (*SyncRatesResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method SyncRates not implemented")
}
func (UnimplementedPricingServiceServer) mustEmbedUnimplementedPricingServiceServer() {}

// RegisterPricingServiceServer registers the PricingServiceServer with the gRPC server.
func RegisterPricingServiceServer(s *grpclib.Server, srv PricingServiceServer) {
	s.RegisterService(&_PricingService_serviceDesc, srv)
}

var _PricingService_serviceDesc = grpclib.ServiceDesc{
	ServiceName: "pricing.v1.PricingService",
	HandlerType: (*PricingServiceServer)(nil),
	Methods: []grpclib.MethodDesc{
		{MethodName: "GetPricing", Handler: _PricingService_GetPricing_Handler},
		{MethodName: "GetRatesByLender", Handler: _PricingService_GetRatesByLender_Handler},
		{MethodName: "Amortize", Handler: _PricingService_Amortize_Handler},
		{MethodName: "CalculateFees", Handler: _PricingService_CalculateFees_Handler},
		{MethodName: "CalculateRatios", Handler: _PricingService_CalculateRatios_Handler},
		{MethodName: "SyncRates", Handler: _PricingService_SyncRates_Handler},
	},
	Streams: []grpclib.StreamDesc{},
}

func _PricingService_GetPricing_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpclib.UnaryServerInterceptor) (interface{}, error) {
	in := new(GetPricingRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(PricingServiceServer).GetPricing(ctx, in)
	}
	info := &grpclib.UnaryServerInfo{
		Server:     srv,
		FullMethod: "/pricing.v1.PricingService/GetPricing",
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(PricingServiceServer).GetPricing(ctx, req.(*GetPricingRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _PricingService_GetRatesByLender_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpclib.UnaryServerInterceptor) (interface{}, error) {
	in := new(GetRatesByLenderRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(PricingServiceServer).GetRatesByLender(ctx, in)
	}
	info := &grpclib.UnaryServerInfo{
		Server:     srv,
		FullMethod: "/pricing.v1.PricingService/GetRatesByLender",
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(PricingServiceServer).GetRatesByLender(ctx, req.(*GetRatesByLenderRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _PricingService_Amortize_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpclib.UnaryServerInterceptor) (interface{}, error) {
	in := new(AmortizeRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(PricingServiceServer).Amortize(ctx, in)
	}
	info := &grpclib.UnaryServerInfo{
		Server:     srv,
		FullMethod: "/pricing.v1.PricingService/Amortize",
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(PricingServiceServer).Amortize(ctx, req.(*AmortizeRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _PricingService_CalculateFees_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpclib.UnaryServerInterceptor) (interface{}, error) {
	in := new(CalculateFeesRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(PricingServiceServer).CalculateFees(ctx, in)
	}
	info := &grpclib.UnaryServerInfo{
		Server:     srv,
		FullMethod: "/pricing.v1.PricingService/CalculateFees",
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(PricingServiceServer).CalculateFees(ctx, req.(*CalculateFeesRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _PricingService_CalculateRatios_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpclib.UnaryServerInterceptor) (interface{}, error) {
	in := new(CalculateRatiosRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(PricingServiceServer).CalculateRatios(ctx, in)
	}
	info := &grpclib.UnaryServerInfo{
		Server:     srv,
		FullMethod: "/pricing.v1.PricingService/CalculateRatios",
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(PricingServiceServer).CalculateRatios(ctx, req.(*CalculateRatiosRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _PricingService_SyncRates_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpclib.UnaryServerInterceptor) (interface{}, error) {
	in := new(SyncRatesRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(PricingServiceServer).SyncRates(ctx, in)
	}
	info := &grpclib.UnaryServerInfo{
		Server:     srv,
		FullMethod: "/pricing.v1.PricingService/SyncRates",
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(PricingServiceServer).SyncRates(ctx, req.(*SyncRatesRequest))
	}
	return interceptor(ctx, in, info, handler)
}
