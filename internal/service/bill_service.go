package service

import (
	"context"
	"log/slog"

	"connectrpc.com/connect"

	"github.com/mmynk/housesplit/internal/models"
	"github.com/mmynk/housesplit/internal/query"
	"github.com/mmynk/housesplit/internal/storage"
	"github.com/mmynk/housesplit/pkg/api"
	"github.com/mmynk/housesplit/pkg/api/apiconnect"
)

// BillService implements the Connect BillService
type BillService struct {
	apiconnect.UnimplementedBillServiceHandler
	store  storage.Store
	reader *query.Reader
}

// NewBillService creates a new BillService with the given storage backend.
func NewBillService(store storage.Store) *BillService {
	return &BillService{store: store, reader: query.New(store)}
}

// AddBill creates a new active bill.
func (s *BillService) AddBill(ctx context.Context, req *connect.Request[api.AddBillRequest]) (*connect.Response[api.AddBillResponse], error) {
	slog.Info("AddBill request received",
		"name", req.Msg.Name,
		"amount", req.Msg.Amount,
		"due_date", req.Msg.DueDate,
	)

	due, err := storage.ParseDueDate(req.Msg.DueDate)
	if err != nil {
		return nil, connectError(err)
	}

	bill := &models.Bill{
		Name:    req.Msg.Name,
		Amount:  req.Msg.Amount,
		DueDate: due,
	}
	if err := s.store.CreateBill(ctx, bill); err != nil {
		slog.Error("AddBill failed", "error", err)
		return nil, connectError(err)
	}

	slog.Info("Bill added", "bill_id", bill.ID)

	return connect.NewResponse(&api.AddBillResponse{Bill: toAPIBill(bill)}), nil
}

// UpdateBill replaces the name, amount and due date of an active bill.
// Assignments are left untouched.
func (s *BillService) UpdateBill(ctx context.Context, req *connect.Request[api.UpdateBillRequest]) (*connect.Response[api.UpdateBillResponse], error) {
	slog.Info("UpdateBill request received",
		"bill_id", req.Msg.BillID,
		"name", req.Msg.Name,
		"amount", req.Msg.Amount,
	)

	due, err := storage.ParseDueDate(req.Msg.DueDate)
	if err != nil {
		return nil, connectError(err)
	}

	bill := &models.Bill{
		ID:      req.Msg.BillID,
		Name:    req.Msg.Name,
		Amount:  req.Msg.Amount,
		DueDate: due,
	}
	if err := s.store.UpdateBill(ctx, bill); err != nil {
		slog.Error("UpdateBill failed", "bill_id", req.Msg.BillID, "error", err)
		return nil, connectError(err)
	}

	slog.Info("Bill updated", "bill_id", bill.ID)

	return connect.NewResponse(&api.UpdateBillResponse{Bill: toAPIBill(bill)}), nil
}

// DeactivateBill removes a bill and all of its assignments.
func (s *BillService) DeactivateBill(ctx context.Context, req *connect.Request[api.DeactivateBillRequest]) (*connect.Response[api.DeactivateBillResponse], error) {
	slog.Info("DeactivateBill request received", "bill_id", req.Msg.BillID)

	if err := s.store.DeactivateBill(ctx, req.Msg.BillID); err != nil {
		slog.Error("DeactivateBill failed", "bill_id", req.Msg.BillID, "error", err)
		return nil, connectError(err)
	}

	return connect.NewResponse(&api.DeactivateBillResponse{}), nil
}

// ListBills returns all active bills.
func (s *BillService) ListBills(ctx context.Context, req *connect.Request[api.ListBillsRequest]) (*connect.Response[api.ListBillsResponse], error) {
	bills, err := s.store.ListActiveBills(ctx)
	if err != nil {
		slog.Error("ListBills failed", "error", err)
		return nil, connectError(err)
	}

	out := make([]*api.Bill, len(bills))
	for i, b := range bills {
		out[i] = toAPIBill(b)
	}

	slog.Debug("ListBills successful", "count", len(out))

	return connect.NewResponse(&api.ListBillsResponse{Bills: out}), nil
}

// Assign links a roommate to a bill.
func (s *BillService) Assign(ctx context.Context, req *connect.Request[api.AssignRequest]) (*connect.Response[api.AssignResponse], error) {
	slog.Info("Assign request received",
		"bill_id", req.Msg.BillID,
		"roommate_id", req.Msg.RoommateID,
	)

	if err := s.store.Assign(ctx, req.Msg.BillID, req.Msg.RoommateID); err != nil {
		slog.Error("Assign failed",
			"bill_id", req.Msg.BillID,
			"roommate_id", req.Msg.RoommateID,
			"error", err,
		)
		return nil, connectError(err)
	}

	return connect.NewResponse(&api.AssignResponse{}), nil
}

// Unassign removes a roommate from a bill.
func (s *BillService) Unassign(ctx context.Context, req *connect.Request[api.UnassignRequest]) (*connect.Response[api.UnassignResponse], error) {
	slog.Info("Unassign request received",
		"bill_id", req.Msg.BillID,
		"roommate_id", req.Msg.RoommateID,
	)

	if err := s.store.Unassign(ctx, req.Msg.BillID, req.Msg.RoommateID); err != nil {
		slog.Error("Unassign failed",
			"bill_id", req.Msg.BillID,
			"roommate_id", req.Msg.RoommateID,
			"error", err,
		)
		return nil, connectError(err)
	}

	return connect.NewResponse(&api.UnassignResponse{}), nil
}

// ListAssignments returns the active roommates assigned to a bill.
func (s *BillService) ListAssignments(ctx context.Context, req *connect.Request[api.ListAssignmentsRequest]) (*connect.Response[api.ListAssignmentsResponse], error) {
	assignees, err := s.store.ListAssignments(ctx, req.Msg.BillID)
	if err != nil {
		slog.Error("ListAssignments failed", "bill_id", req.Msg.BillID, "error", err)
		return nil, connectError(err)
	}

	out := make([]*api.Assignee, len(assignees))
	for i, a := range assignees {
		out[i] = &api.Assignee{
			RoommateID:   a.RoommateID,
			RoommateName: a.RoommateName,
			AssignedAt:   a.AssignedAt,
		}
	}

	return connect.NewResponse(&api.ListAssignmentsResponse{Assignees: out}), nil
}

// GetBillBreakdown shows how an active bill divides among its assignees.
func (s *BillService) GetBillBreakdown(ctx context.Context, req *connect.Request[api.GetBillBreakdownRequest]) (*connect.Response[api.GetBillBreakdownResponse], error) {
	breakdown, err := s.reader.GetBillBreakdown(ctx, req.Msg.BillID)
	if err != nil {
		slog.Error("GetBillBreakdown failed", "bill_id", req.Msg.BillID, "error", err)
		return nil, connectError(err)
	}

	slog.Debug("Bill breakdown",
		"bill_id", breakdown.Bill.ID,
		"amount", breakdown.Bill.Amount,
		"assignees", len(breakdown.Shares),
	)

	return connect.NewResponse(&api.GetBillBreakdownResponse{
		Bill:   toAPIBill(breakdown.Bill),
		Shares: toAPIShares(breakdown.Shares),
	}), nil
}
