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

// RoommateService implements the Connect RoommateService
type RoommateService struct {
	apiconnect.UnimplementedRoommateServiceHandler
	store  storage.Store
	reader *query.Reader
}

// NewRoommateService creates a new RoommateService with the given storage backend.
func NewRoommateService(store storage.Store) *RoommateService {
	return &RoommateService{store: store, reader: query.New(store)}
}

// AddRoommate registers a new active roommate.
func (s *RoommateService) AddRoommate(ctx context.Context, req *connect.Request[api.AddRoommateRequest]) (*connect.Response[api.AddRoommateResponse], error) {
	slog.Info("AddRoommate request received", "name", req.Msg.Name)

	roommate := &models.Roommate{Name: req.Msg.Name}
	if err := s.store.CreateRoommate(ctx, roommate); err != nil {
		slog.Error("AddRoommate failed", "error", err)
		return nil, connectError(err)
	}

	slog.Info("Roommate added", "roommate_id", roommate.ID)

	return connect.NewResponse(&api.AddRoommateResponse{
		Roommate: toAPIRoommate(roommate),
	}), nil
}

// DeactivateRoommate removes a roommate from the household and from every bill.
func (s *RoommateService) DeactivateRoommate(ctx context.Context, req *connect.Request[api.DeactivateRoommateRequest]) (*connect.Response[api.DeactivateRoommateResponse], error) {
	slog.Info("DeactivateRoommate request received", "roommate_id", req.Msg.RoommateID)

	if err := s.store.DeactivateRoommate(ctx, req.Msg.RoommateID); err != nil {
		slog.Error("DeactivateRoommate failed", "roommate_id", req.Msg.RoommateID, "error", err)
		return nil, connectError(err)
	}

	return connect.NewResponse(&api.DeactivateRoommateResponse{}), nil
}

// ListRoommates returns all active roommates ordered by name.
func (s *RoommateService) ListRoommates(ctx context.Context, req *connect.Request[api.ListRoommatesRequest]) (*connect.Response[api.ListRoommatesResponse], error) {
	roommates, err := s.store.ListActiveRoommates(ctx)
	if err != nil {
		slog.Error("ListRoommates failed", "error", err)
		return nil, connectError(err)
	}

	out := make([]*api.Roommate, len(roommates))
	for i, r := range roommates {
		out[i] = toAPIRoommate(r)
	}

	slog.Debug("ListRoommates successful", "count", len(out))

	return connect.NewResponse(&api.ListRoommatesResponse{Roommates: out}), nil
}

// GetRoommateTotal returns what one roommate owes across all active bills.
func (s *RoommateService) GetRoommateTotal(ctx context.Context, req *connect.Request[api.GetRoommateTotalRequest]) (*connect.Response[api.GetRoommateTotalResponse], error) {
	total, err := s.reader.GetRoommateTotal(ctx, req.Msg.RoommateID)
	if err != nil {
		slog.Error("GetRoommateTotal failed", "roommate_id", req.Msg.RoommateID, "error", err)
		return nil, connectError(err)
	}

	slog.Debug("Roommate total", "roommate_id", req.Msg.RoommateID, "total", total)

	return connect.NewResponse(&api.GetRoommateTotalResponse{
		RoommateID: req.Msg.RoommateID,
		Total:      total,
	}), nil
}

// GetAllRoommateTotals returns a total for every active roommate.
func (s *RoommateService) GetAllRoommateTotals(ctx context.Context, req *connect.Request[api.GetAllRoommateTotalsRequest]) (*connect.Response[api.GetAllRoommateTotalsResponse], error) {
	totals, err := s.reader.GetAllRoommateTotals(ctx)
	if err != nil {
		slog.Error("GetAllRoommateTotals failed", "error", err)
		return nil, connectError(err)
	}

	out := make([]*api.RoommateTotal, len(totals))
	for i, t := range totals {
		out[i] = &api.RoommateTotal{
			RoommateID: t.RoommateID,
			Name:       t.Name,
			Total:      t.Total,
		}
	}

	return connect.NewResponse(&api.GetAllRoommateTotalsResponse{Totals: out}), nil
}
