package grpc

// Service descriptor for suhail.v1.AdvisorService. Messages are the
// application DTOs encoded with the JSON codec.

import (
	"context"

	grpclib "google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/suhailre/suhail/internal/application/dto"
)

const serviceName = "suhail.v1.AdvisorService"

// AdvisorServiceServer is the server API for AdvisorService.
type AdvisorServiceServer interface {
	CalculateMortgage(context.Context, *dto.MortgageRequest) (*dto.MortgageSummaryResponse, error)
	GenerateSchedule(context.Context, *dto.MortgageRequest) (*dto.ScheduleResponse, error)
	RankNeighborhoods(context.Context, *dto.RankNeighborhoodsRequest) (*dto.RankNeighborhoodsResponse, error)
	RankFinancingOffers(context.Context, *dto.RankFinancingRequest) (*dto.RankFinancingResponse, error)
	Chat(context.Context, *dto.ChatRequest) (*dto.ChatResponse, error)
	mustEmbedUnimplementedAdvisorServiceServer()
}

// UnimplementedAdvisorServiceServer provides forward-compatible default implementations.
type UnimplementedAdvisorServiceServer struct{}

func (UnimplementedAdvisorServiceServer) CalculateMortgage(context.Context, *dto.MortgageRequest) (*dto.MortgageSummaryResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method CalculateMortgage not implemented")
}
func (UnimplementedAdvisorServiceServer) GenerateSchedule(context.Context, *dto.MortgageRequest) (*dto.ScheduleResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method GenerateSchedule not implemented")
}
func (UnimplementedAdvisorServiceServer) RankNeighborhoods(context.Context, *dto.RankNeighborhoodsRequest) (*dto.RankNeighborhoodsResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method RankNeighborhoods not implemented")
}
func (UnimplementedAdvisorServiceServer) RankFinancingOffers(context.Context, *dto.RankFinancingRequest) (*dto.RankFinancingResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method RankFinancingOffers not implemented")
}
func (UnimplementedAdvisorServiceServer) Chat(context.Context, *dto.ChatRequest) (*dto.ChatResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method Chat not implemented")
}
func (UnimplementedAdvisorServiceServer) mustEmbedUnimplementedAdvisorServiceServer() {}

// RegisterAdvisorServiceServer registers srv with the gRPC server.
func RegisterAdvisorServiceServer(s grpclib.ServiceRegistrar, srv AdvisorServiceServer) {
	s.RegisterService(&advisorServiceDesc, srv)
}

var advisorServiceDesc = grpclib.ServiceDesc{
	ServiceName: serviceName,
	HandlerType: (*AdvisorServiceServer)(nil),
	Methods: []grpclib.MethodDesc{
		{MethodName: "CalculateMortgage", Handler: unaryHandler("CalculateMortgage", AdvisorServiceServer.CalculateMortgage)},
		{MethodName: "GenerateSchedule", Handler: unaryHandler("GenerateSchedule", AdvisorServiceServer.GenerateSchedule)},
		{MethodName: "RankNeighborhoods", Handler: unaryHandler("RankNeighborhoods", AdvisorServiceServer.RankNeighborhoods)},
		{MethodName: "RankFinancingOffers", Handler: unaryHandler("RankFinancingOffers", AdvisorServiceServer.RankFinancingOffers)},
		{MethodName: "Chat", Handler: unaryHandler("Chat", AdvisorServiceServer.Chat)},
	},
	Streams: []grpclib.StreamDesc{},
}

// unaryHandler adapts a typed service method to the descriptor signature.
func unaryHandler[Req, Resp any](
	method string,
	call func(AdvisorServiceServer, context.Context, *Req) (*Resp, error),
) grpclib.MethodHandler {
	fullMethod := "/" + serviceName + "/" + method
	return func(srv any, ctx context.Context, dec func(any) error, interceptor grpclib.UnaryServerInterceptor) (any, error) {
		in := new(Req)
		if err := dec(in); err != nil {
			return nil, err
		}
		if interceptor == nil {
			return call(srv.(AdvisorServiceServer), ctx, in)
		}
		info := &grpclib.UnaryServerInfo{Server: srv, FullMethod: fullMethod}
		handler := func(ctx context.Context, req any) (any, error) {
			return call(srv.(AdvisorServiceServer), ctx, req.(*Req))
		}
		return interceptor(ctx, in, info, handler)
	}
}
