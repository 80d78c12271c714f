// Package query builds the read-side views of the household: what each
// roommate owes and how a single bill is divided. Every call takes a fresh
// store snapshot and recomputes with the calculator; nothing is cached.
package query

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/shopspring/decimal"

	"github.com/mmynk/housesplit/internal/calculator"
	"github.com/mmynk/housesplit/internal/models"
	"github.com/mmynk/housesplit/internal/storage"
)

// Reader answers allocation queries against a store.
type Reader struct {
	store storage.Store
}

// New creates a Reader over the given store.
func New(store storage.Store) *Reader {
	return &Reader{store: store}
}

// AssigneeShare is one roommate's portion of a bill.
type AssigneeShare struct {
	RoommateID   string
	RoommateName string

	// Share is the full-precision equal split.
	Share float64

	// Cents is the share in whole cents. Leftover cents go one each to
	// the last assignees.
	Cents decimal.Decimal
}

// BillBreakdown shows how one active bill is divided right now.
type BillBreakdown struct {
	Bill   *models.Bill
	Shares []AssigneeShare
}

// GetRoommateTotal returns what the roommate owes across all active bills.
// Unknown or inactive roommates owe 0.
func (r *Reader) GetRoommateTotal(ctx context.Context, roommateID string) (float64, error) {
	snap, err := r.store.Snapshot(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to read snapshot: %w", err)
	}

	if !hasRoommate(snap, roommateID) {
		slog.Debug("Total requested for inactive or unknown roommate", "roommate_id", roommateID)
		return 0, nil
	}
	return calculator.TotalFor(roommateID, toBills(snap.Bills), toLinks(snap.Assignments)), nil
}

// GetAllRoommateTotals returns a total for every active roommate, ordered by name.
func (r *Reader) GetAllRoommateTotals(ctx context.Context) ([]models.RoommateTotal, error) {
	snap, err := r.store.Snapshot(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to read snapshot: %w", err)
	}

	roommates := make([]calculator.Roommate, len(snap.Roommates))
	for i, rm := range snap.Roommates {
		roommates[i] = calculator.Roommate{ID: rm.ID, Name: rm.Name}
	}

	calc := calculator.TotalsForAll(roommates, toBills(snap.Bills), toLinks(snap.Assignments))
	totals := make([]models.RoommateTotal, len(calc))
	for i, t := range calc {
		totals[i] = models.RoommateTotal{RoommateID: t.RoommateID, Name: t.Name, Total: t.Total}
	}

	slog.Debug("Computed roommate totals",
		"roommates", len(snap.Roommates),
		"bills", len(snap.Bills),
		"links", len(snap.Assignments),
	)
	return totals, nil
}

// GetBillBreakdown returns the active bill with each active assignee's share.
func (r *Reader) GetBillBreakdown(ctx context.Context, billID string) (*BillBreakdown, error) {
	snap, err := r.store.Snapshot(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to read snapshot: %w", err)
	}

	var bill *models.Bill
	for _, b := range snap.Bills {
		if b.ID == billID {
			bill = b
			break
		}
	}
	if bill == nil {
		return nil, &storage.NotFoundError{Entity: "bill", ID: billID}
	}

	names := make(map[string]string, len(snap.Roommates))
	for _, rm := range snap.Roommates {
		names[rm.ID] = rm.Name
	}

	// Snapshot roommates are ordered by name, so walk them to keep the
	// breakdown in the same order as the assignment list.
	linked := calculator.Assignees(toLinks(snap.Assignments))[billID]
	var ids []string
	for _, rm := range snap.Roommates {
		if _, ok := linked[rm.ID]; ok {
			ids = append(ids, rm.ID)
		}
	}

	breakdown := &BillBreakdown{Bill: bill, Shares: []AssigneeShare{}}
	share, ok := calculator.ShareOf(bill.Amount, len(ids))
	if !ok {
		return breakdown, nil
	}
	cents := calculator.SplitCents(bill.Amount, len(ids))
	for i, id := range ids {
		breakdown.Shares = append(breakdown.Shares, AssigneeShare{
			RoommateID:   id,
			RoommateName: names[id],
			Share:        share,
			Cents:        cents[i],
		})
	}
	return breakdown, nil
}

func hasRoommate(snap *models.Snapshot, roommateID string) bool {
	for _, rm := range snap.Roommates {
		if rm.ID == roommateID {
			return true
		}
	}
	return false
}

func toBills(bills []*models.Bill) []calculator.Bill {
	out := make([]calculator.Bill, len(bills))
	for i, b := range bills {
		out[i] = calculator.Bill{ID: b.ID, Amount: b.Amount}
	}
	return out
}

func toLinks(assignments []*models.Assignment) []calculator.Link {
	out := make([]calculator.Link, len(assignments))
	for i, a := range assignments {
		out[i] = calculator.Link{BillID: a.BillID, RoommateID: a.RoommateID}
	}
	return out
}
