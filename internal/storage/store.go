// Package storage provides abstractions for persistent data storage.
package storage

import (
	"context"

	"github.com/mmynk/housesplit/internal/models"
)

// Store defines the interface for household storage operations.
// This abstraction allows swapping storage backends (SQLite, PostgreSQL)
// without changing the query layer or the API surfaces.
//
// Every method is applied as a single atomic unit. In particular the
// cascade that removes assignment links on deactivation is never
// observable half-done.
type Store interface {
	// CreateRoommate validates and persists a new roommate.
	// ID, CreatedAt and IsActive are populated by the store.
	CreateRoommate(ctx context.Context, roommate *models.Roommate) error

	// GetRoommate retrieves a roommate by ID whether active or not.
	GetRoommate(ctx context.Context, roommateID string) (*models.Roommate, error)

	// DeactivateRoommate soft-deletes a roommate and removes all of its
	// assignment links. Deactivating an inactive or unknown roommate succeeds.
	DeactivateRoommate(ctx context.Context, roommateID string) error

	// ListActiveRoommates returns active roommates ordered by name.
	ListActiveRoommates(ctx context.Context) ([]*models.Roommate, error)

	// CreateBill validates and persists a new bill.
	// ID, CreatedAt and IsActive are populated by the store.
	CreateBill(ctx context.Context, bill *models.Bill) error

	// GetBill retrieves a bill by ID whether active or not.
	GetBill(ctx context.Context, billID string) (*models.Bill, error)

	// UpdateBill overwrites name, amount and due date of an active bill.
	// On success the bill argument holds the stored record.
	UpdateBill(ctx context.Context, bill *models.Bill) error

	// DeactivateBill soft-deletes a bill and removes all of its assignment
	// links. Deactivating an inactive or unknown bill succeeds.
	DeactivateBill(ctx context.Context, billID string) error

	// ListActiveBills returns active bills ordered by due date, then name.
	ListActiveBills(ctx context.Context) ([]*models.Bill, error)

	// Assign links a roommate to a bill. Assigning an existing pair is a no-op.
	Assign(ctx context.Context, billID, roommateID string) error

	// Unassign removes a link. Removing an absent link is a no-op.
	Unassign(ctx context.Context, billID, roommateID string) error

	// ListAssignments returns the active roommates assigned to a bill.
	ListAssignments(ctx context.Context, billID string) ([]*models.Assignee, error)

	// Snapshot reads active roommates, active bills and their links in one
	// read transaction.
	Snapshot(ctx context.Context) (*models.Snapshot, error)

	// Close releases any resources held by the store.
	Close() error
}
