package service

import (
	"errors"

	"connectrpc.com/connect"

	"github.com/mmynk/housesplit/internal/models"
	"github.com/mmynk/housesplit/internal/query"
	"github.com/mmynk/housesplit/internal/storage"
	"github.com/mmynk/housesplit/pkg/api"
)

// connectError maps store and query errors to Connect codes.
func connectError(err error) *connect.Error {
	var ce *connect.Error
	if errors.As(err, &ce) {
		return ce
	}
	switch {
	case storage.IsValidation(err):
		return connect.NewError(connect.CodeInvalidArgument, err)
	case storage.IsNotFound(err):
		return connect.NewError(connect.CodeNotFound, err)
	default:
		return connect.NewError(connect.CodeInternal, err)
	}
}

func toAPIRoommate(r *models.Roommate) *api.Roommate {
	return &api.Roommate{
		ID:        r.ID,
		Name:      r.Name,
		IsActive:  r.IsActive,
		CreatedAt: r.CreatedAt,
	}
}

func toAPIBill(b *models.Bill) *api.Bill {
	return &api.Bill{
		ID:        b.ID,
		Name:      b.Name,
		Amount:    b.Amount,
		DueDate:   b.DueDateString(),
		IsActive:  b.IsActive,
		CreatedAt: b.CreatedAt,
	}
}

func toAPIShares(shares []query.AssigneeShare) []*api.Share {
	out := make([]*api.Share, len(shares))
	for i, s := range shares {
		out[i] = &api.Share{
			RoommateID:   s.RoommateID,
			RoommateName: s.RoommateName,
			Share:        s.Share,
			Cents:        s.Cents.StringFixed(2),
		}
	}
	return out
}
