package rpc

import (
	"context"

	"google.golang.org/grpc"

	"vican-pos/internal/services/reports"
)

const ReportServiceName = "pos.ReportService"

type ReportServer interface {
	SalesReport(context.Context, *RangeRequest) (*reports.SalesReport, error)
	ExpenseReport(context.Context, *RangeRequest) (*reports.ExpenseReport, error)
	Analytics(context.Context, *WindowRequest) (*reports.Analytics, error)
	RestockRecommendations(context.Context, *Empty) (*RestockReply, error)
	CashierPerformance(context.Context, *WindowRequest) (*PerformanceReply, error)
}

var ReportServiceDesc = grpc.ServiceDesc{
	ServiceName: ReportServiceName,
	HandlerType: (*ReportServer)(nil),
	Methods: []grpc.MethodDesc{
		unary(ReportServiceName, "SalesReport", ReportServer.SalesReport),
		unary(ReportServiceName, "ExpenseReport", ReportServer.ExpenseReport),
		unary(ReportServiceName, "Analytics", ReportServer.Analytics),
		unary(ReportServiceName, "RestockRecommendations", ReportServer.RestockRecommendations),
		unary(ReportServiceName, "CashierPerformance", ReportServer.CashierPerformance),
	},
	Metadata: "pos/reports",
}

func RegisterReportServer(s grpc.ServiceRegistrar, srv ReportServer) {
	s.RegisterService(&ReportServiceDesc, srv)
}

type ReportClient interface {
	SalesReport(ctx context.Context, in *RangeRequest, opts ...grpc.CallOption) (*reports.SalesReport, error)
	ExpenseReport(ctx context.Context, in *RangeRequest, opts ...grpc.CallOption) (*reports.ExpenseReport, error)
	Analytics(ctx context.Context, in *WindowRequest, opts ...grpc.CallOption) (*reports.Analytics, error)
	RestockRecommendations(ctx context.Context, in *Empty, opts ...grpc.CallOption) (*RestockReply, error)
	CashierPerformance(ctx context.Context, in *WindowRequest, opts ...grpc.CallOption) (*PerformanceReply, error)
}

type reportClient struct {
	cc grpc.ClientConnInterface
}

func NewReportClient(cc grpc.ClientConnInterface) ReportClient {
	return &reportClient{cc: cc}
}

func (c *reportClient) SalesReport(ctx context.Context, in *RangeRequest, opts ...grpc.CallOption) (*reports.SalesReport, error) {
	return invoke[reports.SalesReport](ctx, c.cc, ReportServiceName, "SalesReport", in, opts)
}

func (c *reportClient) ExpenseReport(ctx context.Context, in *RangeRequest, opts ...grpc.CallOption) (*reports.ExpenseReport, error) {
	return invoke[reports.ExpenseReport](ctx, c.cc, ReportServiceName, "ExpenseReport", in, opts)
}

func (c *reportClient) Analytics(ctx context.Context, in *WindowRequest, opts ...grpc.CallOption) (*reports.Analytics, error) {
	return invoke[reports.Analytics](ctx, c.cc, ReportServiceName, "Analytics", in, opts)
}

func (c *reportClient) RestockRecommendations(ctx context.Context, in *Empty, opts ...grpc.CallOption) (*RestockReply, error) {
	return invoke[RestockReply](ctx, c.cc, ReportServiceName, "RestockRecommendations", in, opts)
}

func (c *reportClient) CashierPerformance(ctx context.Context, in *WindowRequest, opts ...grpc.CallOption) (*PerformanceReply, error) {
	return invoke[PerformanceReply](ctx, c.cc, ReportServiceName, "CashierPerformance", in, opts)
}
