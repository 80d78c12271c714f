// Package apiconnect wires the housesplit.v1 services to Connect handlers and
// clients. Every handler and client uses api.JSONCodec.
package apiconnect

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"connectrpc.com/connect"

	"github.com/mmynk/housesplit/pkg/api"
)

const (
	// RoommateServiceName is the fully-qualified name of the RoommateService service.
	RoommateServiceName = "housesplit.v1.RoommateService"
	// BillServiceName is the fully-qualified name of the BillService service.
	BillServiceName = "housesplit.v1.BillService"
)

// Procedure names, usable as Spec.Procedure and as HTTP routes.
const (
	RoommateServiceAddRoommateProcedure          = "/housesplit.v1.RoommateService/AddRoommate"
	RoommateServiceDeactivateRoommateProcedure   = "/housesplit.v1.RoommateService/DeactivateRoommate"
	RoommateServiceListRoommatesProcedure        = "/housesplit.v1.RoommateService/ListRoommates"
	RoommateServiceGetRoommateTotalProcedure     = "/housesplit.v1.RoommateService/GetRoommateTotal"
	RoommateServiceGetAllRoommateTotalsProcedure = "/housesplit.v1.RoommateService/GetAllRoommateTotals"

	BillServiceAddBillProcedure          = "/housesplit.v1.BillService/AddBill"
	BillServiceUpdateBillProcedure       = "/housesplit.v1.BillService/UpdateBill"
	BillServiceDeactivateBillProcedure   = "/housesplit.v1.BillService/DeactivateBill"
	BillServiceListBillsProcedure        = "/housesplit.v1.BillService/ListBills"
	BillServiceAssignProcedure           = "/housesplit.v1.BillService/Assign"
	BillServiceUnassignProcedure         = "/housesplit.v1.BillService/Unassign"
	BillServiceListAssignmentsProcedure  = "/housesplit.v1.BillService/ListAssignments"
	BillServiceGetBillBreakdownProcedure = "/housesplit.v1.BillService/GetBillBreakdown"
)

func withCodec[T any](opts []T, codec T) []T {
	return append([]T{codec}, opts...)
}

// RoommateServiceClient is a client for the housesplit.v1.RoommateService service.
type RoommateServiceClient interface {
	AddRoommate(context.Context, *connect.Request[api.AddRoommateRequest]) (*connect.Response[api.AddRoommateResponse], error)
	DeactivateRoommate(context.Context, *connect.Request[api.DeactivateRoommateRequest]) (*connect.Response[api.DeactivateRoommateResponse], error)
	ListRoommates(context.Context, *connect.Request[api.ListRoommatesRequest]) (*connect.Response[api.ListRoommatesResponse], error)
	GetRoommateTotal(context.Context, *connect.Request[api.GetRoommateTotalRequest]) (*connect.Response[api.GetRoommateTotalResponse], error)
	GetAllRoommateTotals(context.Context, *connect.Request[api.GetAllRoommateTotalsRequest]) (*connect.Response[api.GetAllRoommateTotalsResponse], error)
}

// NewRoommateServiceClient constructs a client for the housesplit.v1.RoommateService
// service. The URL should be the base URL of the server, e.g. http://localhost:8080.
func NewRoommateServiceClient(httpClient connect.HTTPClient, baseURL string, opts ...connect.ClientOption) RoommateServiceClient {
	baseURL = strings.TrimRight(baseURL, "/")
	opts = withCodec(opts, connect.ClientOption(connect.WithCodec(api.JSONCodec{})))
	return &roommateServiceClient{
		addRoommate: connect.NewClient[api.AddRoommateRequest, api.AddRoommateResponse](
			httpClient, baseURL+RoommateServiceAddRoommateProcedure, opts...,
		),
		deactivateRoommate: connect.NewClient[api.DeactivateRoommateRequest, api.DeactivateRoommateResponse](
			httpClient, baseURL+RoommateServiceDeactivateRoommateProcedure, opts...,
		),
		listRoommates: connect.NewClient[api.ListRoommatesRequest, api.ListRoommatesResponse](
			httpClient, baseURL+RoommateServiceListRoommatesProcedure, opts...,
		),
		getRoommateTotal: connect.NewClient[api.GetRoommateTotalRequest, api.GetRoommateTotalResponse](
			httpClient, baseURL+RoommateServiceGetRoommateTotalProcedure, opts...,
		),
		getAllRoommateTotals: connect.NewClient[api.GetAllRoommateTotalsRequest, api.GetAllRoommateTotalsResponse](
			httpClient, baseURL+RoommateServiceGetAllRoommateTotalsProcedure, opts...,
		),
	}
}

type roommateServiceClient struct {
	addRoommate          *connect.Client[api.AddRoommateRequest, api.AddRoommateResponse]
	deactivateRoommate   *connect.Client[api.DeactivateRoommateRequest, api.DeactivateRoommateResponse]
	listRoommates        *connect.Client[api.ListRoommatesRequest, api.ListRoommatesResponse]
	getRoommateTotal     *connect.Client[api.GetRoommateTotalRequest, api.GetRoommateTotalResponse]
	getAllRoommateTotals *connect.Client[api.GetAllRoommateTotalsRequest, api.GetAllRoommateTotalsResponse]
}

func (c *roommateServiceClient) AddRoommate(ctx context.Context, req *connect.Request[api.AddRoommateRequest]) (*connect.Response[api.AddRoommateResponse], error) {
	return c.addRoommate.CallUnary(ctx, req)
}

func (c *roommateServiceClient) DeactivateRoommate(ctx context.Context, req *connect.Request[api.DeactivateRoommateRequest]) (*connect.Response[api.DeactivateRoommateResponse], error) {
	return c.deactivateRoommate.CallUnary(ctx, req)
}

func (c *roommateServiceClient) ListRoommates(ctx context.Context, req *connect.Request[api.ListRoommatesRequest]) (*connect.Response[api.ListRoommatesResponse], error) {
	return c.listRoommates.CallUnary(ctx, req)
}

func (c *roommateServiceClient) GetRoommateTotal(ctx context.Context, req *connect.Request[api.GetRoommateTotalRequest]) (*connect.Response[api.GetRoommateTotalResponse], error) {
	return c.getRoommateTotal.CallUnary(ctx, req)
}

func (c *roommateServiceClient) GetAllRoommateTotals(ctx context.Context, req *connect.Request[api.GetAllRoommateTotalsRequest]) (*connect.Response[api.GetAllRoommateTotalsResponse], error) {
	return c.getAllRoommateTotals.CallUnary(ctx, req)
}

// RoommateServiceHandler is an implementation of the housesplit.v1.RoommateService service.
type RoommateServiceHandler interface {
	AddRoommate(context.Context, *connect.Request[api.AddRoommateRequest]) (*connect.Response[api.AddRoommateResponse], error)
	DeactivateRoommate(context.Context, *connect.Request[api.DeactivateRoommateRequest]) (*connect.Response[api.DeactivateRoommateResponse], error)
	ListRoommates(context.Context, *connect.Request[api.ListRoommatesRequest]) (*connect.Response[api.ListRoommatesResponse], error)
	GetRoommateTotal(context.Context, *connect.Request[api.GetRoommateTotalRequest]) (*connect.Response[api.GetRoommateTotalResponse], error)
	GetAllRoommateTotals(context.Context, *connect.Request[api.GetAllRoommateTotalsRequest]) (*connect.Response[api.GetAllRoommateTotalsResponse], error)
}

// NewRoommateServiceHandler builds an HTTP handler from the service implementation.
// It returns the path on which to mount the handler and the handler itself.
func NewRoommateServiceHandler(svc RoommateServiceHandler, opts ...connect.HandlerOption) (string, http.Handler) {
	opts = withCodec(opts, connect.HandlerOption(connect.WithCodec(api.JSONCodec{})))
	addRoommate := connect.NewUnaryHandler(RoommateServiceAddRoommateProcedure, svc.AddRoommate, opts...)
	deactivateRoommate := connect.NewUnaryHandler(RoommateServiceDeactivateRoommateProcedure, svc.DeactivateRoommate, opts...)
	listRoommates := connect.NewUnaryHandler(RoommateServiceListRoommatesProcedure, svc.ListRoommates, opts...)
	getRoommateTotal := connect.NewUnaryHandler(RoommateServiceGetRoommateTotalProcedure, svc.GetRoommateTotal, opts...)
	getAllRoommateTotals := connect.NewUnaryHandler(RoommateServiceGetAllRoommateTotalsProcedure, svc.GetAllRoommateTotals, opts...)
	return "/" + RoommateServiceName + "/", http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case RoommateServiceAddRoommateProcedure:
			addRoommate.ServeHTTP(w, r)
		case RoommateServiceDeactivateRoommateProcedure:
			deactivateRoommate.ServeHTTP(w, r)
		case RoommateServiceListRoommatesProcedure:
			listRoommates.ServeHTTP(w, r)
		case RoommateServiceGetRoommateTotalProcedure:
			getRoommateTotal.ServeHTTP(w, r)
		case RoommateServiceGetAllRoommateTotalsProcedure:
			getAllRoommateTotals.ServeHTTP(w, r)
		default:
			http.NotFound(w, r)
		}
	})
}

// UnimplementedRoommateServiceHandler returns CodeUnimplemented from all methods.
type UnimplementedRoommateServiceHandler struct{}

func (UnimplementedRoommateServiceHandler) AddRoommate(context.Context, *connect.Request[api.AddRoommateRequest]) (*connect.Response[api.AddRoommateResponse], error) {
	return nil, connect.NewError(connect.CodeUnimplemented, errors.New("housesplit.v1.RoommateService.AddRoommate is not implemented"))
}

func (UnimplementedRoommateServiceHandler) DeactivateRoommate(context.Context, *connect.Request[api.DeactivateRoommateRequest]) (*connect.Response[api.DeactivateRoommateResponse], error) {
	return nil, connect.NewError(connect.CodeUnimplemented, errors.New("housesplit.v1.RoommateService.DeactivateRoommate is not implemented"))
}

func (UnimplementedRoommateServiceHandler) ListRoommates(context.Context, *connect.Request[api.ListRoommatesRequest]) (*connect.Response[api.ListRoommatesResponse], error) {
	return nil, connect.NewError(connect.CodeUnimplemented, errors.New("housesplit.v1.RoommateService.ListRoommates is not implemented"))
}

func (UnimplementedRoommateServiceHandler) GetRoommateTotal(context.Context, *connect.Request[api.GetRoommateTotalRequest]) (*connect.Response[api.GetRoommateTotalResponse], error) {
	return nil, connect.NewError(connect.CodeUnimplemented, errors.New("housesplit.v1.RoommateService.GetRoommateTotal is not implemented"))
}

func (UnimplementedRoommateServiceHandler) GetAllRoommateTotals(context.Context, *connect.Request[api.GetAllRoommateTotalsRequest]) (*connect.Response[api.GetAllRoommateTotalsResponse], error) {
	return nil, connect.NewError(connect.CodeUnimplemented, errors.New("housesplit.v1.RoommateService.GetAllRoommateTotals is not implemented"))
}

// BillServiceClient is a client for the housesplit.v1.BillService service.
type BillServiceClient interface {
	AddBill(context.Context, *connect.Request[api.AddBillRequest]) (*connect.Response[api.AddBillResponse], error)
	UpdateBill(context.Context, *connect.Request[api.UpdateBillRequest]) (*connect.Response[api.UpdateBillResponse], error)
	DeactivateBill(context.Context, *connect.Request[api.DeactivateBillRequest]) (*connect.Response[api.DeactivateBillResponse], error)
	ListBills(context.Context, *connect.Request[api.ListBillsRequest]) (*connect.Response[api.ListBillsResponse], error)
	Assign(context.Context, *connect.Request[api.AssignRequest]) (*connect.Response[api.AssignResponse], error)
	Unassign(context.Context, *connect.Request[api.UnassignRequest]) (*connect.Response[api.UnassignResponse], error)
	ListAssignments(context.Context, *connect.Request[api.ListAssignmentsRequest]) (*connect.Response[api.ListAssignmentsResponse], error)
	GetBillBreakdown(context.Context, *connect.Request[api.GetBillBreakdownRequest]) (*connect.Response[api.GetBillBreakdownResponse], error)
}

// NewBillServiceClient constructs a client for the housesplit.v1.BillService service.
func NewBillServiceClient(httpClient connect.HTTPClient, baseURL string, opts ...connect.ClientOption) BillServiceClient {
	baseURL = strings.TrimRight(baseURL, "/")
	opts = withCodec(opts, connect.ClientOption(connect.WithCodec(api.JSONCodec{})))
	return &billServiceClient{
		addBill: connect.NewClient[api.AddBillRequest, api.AddBillResponse](
			httpClient, baseURL+BillServiceAddBillProcedure, opts...,
		),
		updateBill: connect.NewClient[api.UpdateBillRequest, api.UpdateBillResponse](
			httpClient, baseURL+BillServiceUpdateBillProcedure, opts...,
		),
		deactivateBill: connect.NewClient[api.DeactivateBillRequest, api.DeactivateBillResponse](
			httpClient, baseURL+BillServiceDeactivateBillProcedure, opts...,
		),
		listBills: connect.NewClient[api.ListBillsRequest, api.ListBillsResponse](
			httpClient, baseURL+BillServiceListBillsProcedure, opts...,
		),
		assign: connect.NewClient[api.AssignRequest, api.AssignResponse](
			httpClient, baseURL+BillServiceAssignProcedure, opts...,
		),
		unassign: connect.NewClient[api.UnassignRequest, api.UnassignResponse](
			httpClient, baseURL+BillServiceUnassignProcedure, opts...,
		),
		listAssignments: connect.NewClient[api.ListAssignmentsRequest, api.ListAssignmentsResponse](
			httpClient, baseURL+BillServiceListAssignmentsProcedure, opts...,
		),
		getBillBreakdown: connect.NewClient[api.GetBillBreakdownRequest, api.GetBillBreakdownResponse](
			httpClient, baseURL+BillServiceGetBillBreakdownProcedure, opts...,
		),
	}
}

type billServiceClient struct {
	addBill          *connect.Client[api.AddBillRequest, api.AddBillResponse]
	updateBill       *connect.Client[api.UpdateBillRequest, api.UpdateBillResponse]
	deactivateBill   *connect.Client[api.DeactivateBillRequest, api.DeactivateBillResponse]
	listBills        *connect.Client[api.ListBillsRequest, api.ListBillsResponse]
	assign           *connect.Client[api.AssignRequest, api.AssignResponse]
	unassign         *connect.Client[api.UnassignRequest, api.UnassignResponse]
	listAssignments  *connect.Client[api.ListAssignmentsRequest, api.ListAssignmentsResponse]
	getBillBreakdown *connect.Client[api.GetBillBreakdownRequest, api.GetBillBreakdownResponse]
}

func (c *billServiceClient) AddBill(ctx context.Context, req *connect.Request[api.AddBillRequest]) (*connect.Response[api.AddBillResponse], error) {
	return c.addBill.CallUnary(ctx, req)
}

func (c *billServiceClient) UpdateBill(ctx context.Context, req *connect.Request[api.UpdateBillRequest]) (*connect.Response[api.UpdateBillResponse], error) {
	return c.updateBill.CallUnary(ctx, req)
}

func (c *billServiceClient) DeactivateBill(ctx context.Context, req *connect.Request[api.DeactivateBillRequest]) (*connect.Response[api.DeactivateBillResponse], error) {
	return c.deactivateBill.CallUnary(ctx, req)
}

func (c *billServiceClient) ListBills(ctx context.Context, req *connect.Request[api.ListBillsRequest]) (*connect.Response[api.ListBillsResponse], error) {
	return c.listBills.CallUnary(ctx, req)
}

func (c *billServiceClient) Assign(ctx context.Context, req *connect.Request[api.AssignRequest]) (*connect.Response[api.AssignResponse], error) {
	return c.assign.CallUnary(ctx, req)
}

func (c *billServiceClient) Unassign(ctx context.Context, req *connect.Request[api.UnassignRequest]) (*connect.Response[api.UnassignResponse], error) {
	return c.unassign.CallUnary(ctx, req)
}

func (c *billServiceClient) ListAssignments(ctx context.Context, req *connect.Request[api.ListAssignmentsRequest]) (*connect.Response[api.ListAssignmentsResponse], error) {
	return c.listAssignments.CallUnary(ctx, req)
}

func (c *billServiceClient) GetBillBreakdown(ctx context.Context, req *connect.Request[api.GetBillBreakdownRequest]) (*connect.Response[api.GetBillBreakdownResponse], error) {
	return c.getBillBreakdown.CallUnary(ctx, req)
}

// BillServiceHandler is an implementation of the housesplit.v1.BillService service.
type BillServiceHandler interface {
	AddBill(context.Context, *connect.Request[api.AddBillRequest]) (*connect.Response[api.AddBillResponse], error)
	UpdateBill(context.Context, *connect.Request[api.UpdateBillRequest]) (*connect.Response[api.UpdateBillResponse], error)
	DeactivateBill(context.Context, *connect.Request[api.DeactivateBillRequest]) (*connect.Response[api.DeactivateBillResponse], error)
	ListBills(context.Context, *connect.Request[api.ListBillsRequest]) (*connect.Response[api.ListBillsResponse], error)
	Assign(context.Context, *connect.Request[api.AssignRequest]) (*connect.Response[api.AssignResponse], error)
	Unassign(context.Context, *connect.Request[api.UnassignRequest]) (*connect.Response[api.UnassignResponse], error)
	ListAssignments(context.Context, *connect.Request[api.ListAssignmentsRequest]) (*connect.Response[api.ListAssignmentsResponse], error)
	GetBillBreakdown(context.Context, *connect.Request[api.GetBillBreakdownRequest]) (*connect.Response[api.GetBillBreakdownResponse], error)
}

// NewBillServiceHandler builds an HTTP handler from the service implementation.
// It returns the path on which to mount the handler and the handler itself.
func NewBillServiceHandler(svc BillServiceHandler, opts ...connect.HandlerOption) (string, http.Handler) {
	opts = withCodec(opts, connect.HandlerOption(connect.WithCodec(api.JSONCodec{})))
	addBill := connect.NewUnaryHandler(BillServiceAddBillProcedure, svc.AddBill, opts...)
	updateBill := connect.NewUnaryHandler(BillServiceUpdateBillProcedure, svc.UpdateBill, opts...)
	deactivateBill := connect.NewUnaryHandler(BillServiceDeactivateBillProcedure, svc.DeactivateBill, opts...)
	listBills := connect.NewUnaryHandler(BillServiceListBillsProcedure, svc.ListBills, opts...)
	assign := connect.NewUnaryHandler(BillServiceAssignProcedure, svc.Assign, opts...)
	unassign := connect.NewUnaryHandler(BillServiceUnassignProcedure, svc.Unassign, opts...)
	listAssignments := connect.NewUnaryHandler(BillServiceListAssignmentsProcedure, svc.ListAssignments, opts...)
	getBillBreakdown := connect.NewUnaryHandler(BillServiceGetBillBreakdownProcedure, svc.GetBillBreakdown, opts...)
	return "/" + BillServiceName + "/", http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case BillServiceAddBillProcedure:
			addBill.ServeHTTP(w, r)
		case BillServiceUpdateBillProcedure:
			updateBill.ServeHTTP(w, r)
		case BillServiceDeactivateBillProcedure:
			deactivateBill.ServeHTTP(w, r)
		case BillServiceListBillsProcedure:
			listBills.ServeHTTP(w, r)
		case BillServiceAssignProcedure:
			assign.ServeHTTP(w, r)
		case BillServiceUnassignProcedure:
			unassign.ServeHTTP(w, r)
		case BillServiceListAssignmentsProcedure:
			listAssignments.ServeHTTP(w, r)
		case BillServiceGetBillBreakdownProcedure:
			getBillBreakdown.ServeHTTP(w, r)
		default:
			http.NotFound(w, r)
		}
	})
}

// UnimplementedBillServiceHandler returns CodeUnimplemented from all methods.
type UnimplementedBillServiceHandler struct{}

func (UnimplementedBillServiceHandler) AddBill(context.Context, *connect.Request[api.AddBillRequest]) (*connect.Response[api.AddBillResponse], error) {
	return nil, connect.NewError(connect.CodeUnimplemented, errors.New("housesplit.v1.BillService.AddBill is not implemented"))
}

func (UnimplementedBillServiceHandler) UpdateBill(context.Context, *connect.Request[api.UpdateBillRequest]) (*connect.Response[api.UpdateBillResponse], error) {
	return nil, connect.NewError(connect.CodeUnimplemented, errors.New("housesplit.v1.BillService.UpdateBill is not implemented"))
}

func (UnimplementedBillServiceHandler) DeactivateBill(context.Context, *connect.Request[api.DeactivateBillRequest]) (*connect.Response[api.DeactivateBillResponse], error) {
	return nil, connect.NewError(connect.CodeUnimplemented, errors.New("housesplit.v1.BillService.DeactivateBill is not implemented"))
}

func (UnimplementedBillServiceHandler) ListBills(context.Context, *connect.Request[api.ListBillsRequest]) (*connect.Response[api.ListBillsResponse], error) {
	return nil, connect.NewError(connect.CodeUnimplemented, errors.New("housesplit.v1.BillService.ListBills is not implemented"))
}

func (UnimplementedBillServiceHandler) Assign(context.Context, *connect.Request[api.AssignRequest]) (*connect.Response[api.AssignResponse], error) {
	return nil, connect.NewError(connect.CodeUnimplemented, errors.New("housesplit.v1.BillService.Assign is not implemented"))
}

func (UnimplementedBillServiceHandler) Unassign(context.Context, *connect.Request[api.UnassignRequest]) (*connect.Response[api.UnassignResponse], error) {
	return nil, connect.NewError(connect.CodeUnimplemented, errors.New("housesplit.v1.BillService.Unassign is not implemented"))
}

func (UnimplementedBillServiceHandler) ListAssignments(context.Context, *connect.Request[api.ListAssignmentsRequest]) (*connect.Response[api.ListAssignmentsResponse], error) {
	return nil, connect.NewError(connect.CodeUnimplemented, errors.New("housesplit.v1.BillService.ListAssignments is not implemented"))
}

func (UnimplementedBillServiceHandler) GetBillBreakdown(context.Context, *connect.Request[api.GetBillBreakdownRequest]) (*connect.Response[api.GetBillBreakdownResponse], error) {
	return nil, connect.NewError(connect.CodeUnimplemented, errors.New("housesplit.v1.BillService.GetBillBreakdown is not implemented"))
}
