package postgres

import (
	"context"
	"os"
	"testing"

	"github.com/mmynk/housesplit/internal/models"
	"github.com/mmynk/housesplit/internal/storage"
)

// These tests need a disposable database, e.g.
// HOUSESPLIT_TEST_DSN=postgres://localhost/housesplit_test?sslmode=disable
func testDSN(t *testing.T) string {
	t.Helper()
	dsn := os.Getenv("HOUSESPLIT_TEST_DSN")
	if dsn == "" {
		t.Skip("HOUSESPLIT_TEST_DSN not set")
	}
	return dsn
}

func TestPostgresStore(t *testing.T) {
	dsn := testDSN(t)
	ctx := context.Background()

	store, err := New(ctx, dsn)
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	defer store.Close()

	if _, err := store.DB().ExecContext(ctx, "TRUNCATE bill_assignments, bills, roommates"); err != nil {
		t.Fatalf("truncate: %v", err)
	}

	alice := &models.Roommate{Name: "Alice"}
	bob := &models.Roommate{Name: "Bob"}
	for _, r := range []*models.Roommate{alice, bob} {
		if err := store.CreateRoommate(ctx, r); err != nil {
			t.Fatalf("CreateRoommate failed: %v", err)
		}
	}
	rent := &models.Bill{Name: "Rent", Amount: 1200}
	if err := store.CreateBill(ctx, rent); err != nil {
		t.Fatalf("CreateBill failed: %v", err)
	}

	t.Run("assign twice keeps one link", func(t *testing.T) {
		for i := 0; i < 2; i++ {
			if err := store.Assign(ctx, rent.ID, alice.ID); err != nil {
				t.Fatalf("Assign failed: %v", err)
			}
		}
		if err := store.Assign(ctx, rent.ID, bob.ID); err != nil {
			t.Fatalf("Assign failed: %v", err)
		}
		got, err := store.ListAssignments(ctx, rent.ID)
		if err != nil {
			t.Fatalf("ListAssignments failed: %v", err)
		}
		if len(got) != 2 {
			t.Errorf("expected 2 assignees, got %d", len(got))
		}
	})

	t.Run("update missing bill", func(t *testing.T) {
		err := store.UpdateBill(ctx, &models.Bill{ID: "nonexistent-id", Name: "X", Amount: 1})
		if !storage.IsNotFound(err) {
			t.Errorf("UpdateBill error = %v, want NotFoundError", err)
		}
	})

	t.Run("deactivate cascades", func(t *testing.T) {
		if err := store.DeactivateRoommate(ctx, bob.ID); err != nil {
			t.Fatalf("DeactivateRoommate failed: %v", err)
		}
		snap, err := store.Snapshot(ctx)
		if err != nil {
			t.Fatalf("Snapshot failed: %v", err)
		}
		if len(snap.Roommates) != 1 || len(snap.Assignments) != 1 {
			t.Errorf("snapshot = %d roommates, %d links; want 1, 1",
				len(snap.Roommates), len(snap.Assignments))
		}
	})
}
