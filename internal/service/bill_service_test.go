package service

import (
	"context"
	"math"
	"testing"

	"connectrpc.com/connect"

	"github.com/mmynk/housesplit/pkg/api"
)

func TestAddBill(t *testing.T) {
	_, client, cleanup := setupTestServer(t)
	defer cleanup()

	resp, err := client.AddBill(context.Background(), connect.NewRequest(&api.AddBillRequest{
		Name:    "Rent",
		Amount:  1200,
		DueDate: "2026-11-01",
	}))
	if err != nil {
		t.Fatalf("AddBill failed: %v", err)
	}

	bill := resp.Msg.Bill
	if bill.ID == "" {
		t.Error("expected non-empty bill ID")
	}
	if bill.Name != "Rent" || bill.Amount != 1200 {
		t.Errorf("expected Rent/1200, got %s/%v", bill.Name, bill.Amount)
	}
	if bill.DueDate != "2026-11-01" {
		t.Errorf("due_date: expected 2026-11-01, got %q", bill.DueDate)
	}
	if !bill.IsActive {
		t.Error("expected bill to be active")
	}
}

func TestAddBill_Invalid(t *testing.T) {
	_, client, cleanup := setupTestServer(t)
	defer cleanup()
	ctx := context.Background()

	tests := []struct {
		name string
		req  *api.AddBillRequest
	}{
		{"negative amount", &api.AddBillRequest{Name: "Groceries", Amount: -5}},
		{"zero amount", &api.AddBillRequest{Name: "Groceries", Amount: 0}},
		{"blank name", &api.AddBillRequest{Name: " ", Amount: 10}},
		{"bad due date", &api.AddBillRequest{Name: "Power", Amount: 10, DueDate: "11/01/2026"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := client.AddBill(ctx, connect.NewRequest(tt.req))
			expectCode(t, err, connect.CodeInvalidArgument)
		})
	}

	resp, err := client.ListBills(ctx, connect.NewRequest(&api.ListBillsRequest{}))
	if err != nil {
		t.Fatalf("ListBills failed: %v", err)
	}
	if len(resp.Msg.Bills) != 0 {
		t.Errorf("expected no bills to be stored, got %d", len(resp.Msg.Bills))
	}
}

func TestUpdateBill(t *testing.T) {
	roommates, bills, cleanup := setupTestServer(t)
	defer cleanup()
	ctx := context.Background()

	a := addRoommate(t, roommates, "A")
	b := addRoommate(t, roommates, "B")
	power := addBill(t, bills, "Power", 100)
	assign(t, bills, power, a, b)

	resp, err := bills.UpdateBill(ctx, connect.NewRequest(&api.UpdateBillRequest{
		BillID:  power.ID,
		Name:    "Electricity",
		Amount:  150,
		DueDate: "2026-12-15",
	}))
	if err != nil {
		t.Fatalf("UpdateBill failed: %v", err)
	}
	if resp.Msg.Bill.Name != "Electricity" || resp.Msg.Bill.Amount != 150 {
		t.Errorf("expected Electricity/150, got %s/%v", resp.Msg.Bill.Name, resp.Msg.Bill.Amount)
	}
	if !resp.Msg.Bill.IsActive {
		t.Error("expected updated bill to be active")
	}
	if resp.Msg.Bill.CreatedAt != power.CreatedAt {
		t.Errorf("created_at changed: %d -> %d", power.CreatedAt, resp.Msg.Bill.CreatedAt)
	}

	totals := totalsByName(t, roommates)
	if math.Abs(totals["A"]-75) > 1e-9 {
		t.Errorf("A total after update: expected 75, got %v", totals["A"])
	}
}

func TestUpdateBill_NotFound(t *testing.T) {
	_, client, cleanup := setupTestServer(t)
	defer cleanup()

	_, err := client.UpdateBill(context.Background(), connect.NewRequest(&api.UpdateBillRequest{
		BillID: "nonexistent-id",
		Name:   "Rent",
		Amount: 100,
	}))
	expectCode(t, err, connect.CodeNotFound)
}

func TestDeactivateBill(t *testing.T) {
	roommates, bills, cleanup := setupTestServer(t)
	defer cleanup()
	ctx := context.Background()

	a := addRoommate(t, roommates, "A")
	gym := addBill(t, bills, "Gym", 40)
	assign(t, bills, gym, a)

	if _, err := bills.DeactivateBill(ctx, connect.NewRequest(&api.DeactivateBillRequest{BillID: gym.ID})); err != nil {
		t.Fatalf("DeactivateBill failed: %v", err)
	}

	listResp, err := bills.ListBills(ctx, connect.NewRequest(&api.ListBillsRequest{}))
	if err != nil {
		t.Fatalf("ListBills failed: %v", err)
	}
	if len(listResp.Msg.Bills) != 0 {
		t.Errorf("expected no active bills, got %d", len(listResp.Msg.Bills))
	}

	if totals := totalsByName(t, roommates); totals["A"] != 0 {
		t.Errorf("A total: expected 0, got %v", totals["A"])
	}

	_, err = bills.GetBillBreakdown(ctx, connect.NewRequest(&api.GetBillBreakdownRequest{BillID: gym.ID}))
	expectCode(t, err, connect.CodeNotFound)
}

func TestAssign(t *testing.T) {
	roommates, bills, cleanup := setupTestServer(t)
	defer cleanup()
	ctx := context.Background()

	a := addRoommate(t, roommates, "A")
	rent := addBill(t, bills, "Rent", 1200)

	t.Run("re-assign is a no-op", func(t *testing.T) {
		assign(t, bills, rent, a, a, a)
		resp, err := bills.ListAssignments(ctx, connect.NewRequest(&api.ListAssignmentsRequest{BillID: rent.ID}))
		if err != nil {
			t.Fatalf("ListAssignments failed: %v", err)
		}
		if len(resp.Msg.Assignees) != 1 {
			t.Errorf("expected 1 assignee, got %d", len(resp.Msg.Assignees))
		}
		if resp.Msg.Assignees[0].RoommateName != "A" {
			t.Errorf("expected assignee A, got %s", resp.Msg.Assignees[0].RoommateName)
		}
	})

	t.Run("unknown roommate", func(t *testing.T) {
		_, err := bills.Assign(ctx, connect.NewRequest(&api.AssignRequest{BillID: rent.ID, RoommateID: "nonexistent-id"}))
		expectCode(t, err, connect.CodeNotFound)
	})

	t.Run("unknown bill", func(t *testing.T) {
		_, err := bills.Assign(ctx, connect.NewRequest(&api.AssignRequest{BillID: "nonexistent-id", RoommateID: a.ID}))
		expectCode(t, err, connect.CodeNotFound)
	})

	t.Run("unassign twice", func(t *testing.T) {
		for i := 0; i < 2; i++ {
			_, err := bills.Unassign(ctx, connect.NewRequest(&api.UnassignRequest{BillID: rent.ID, RoommateID: a.ID}))
			if err != nil {
				t.Fatalf("Unassign #%d failed: %v", i+1, err)
			}
		}
		resp, err := bills.ListAssignments(ctx, connect.NewRequest(&api.ListAssignmentsRequest{BillID: rent.ID}))
		if err != nil {
			t.Fatalf("ListAssignments failed: %v", err)
		}
		if len(resp.Msg.Assignees) != 0 {
			t.Errorf("expected 0 assignees, got %d", len(resp.Msg.Assignees))
		}
	})
}

func TestGetBillBreakdown(t *testing.T) {
	roommates, bills, cleanup := setupTestServer(t)
	defer cleanup()

	a := addRoommate(t, roommates, "A")
	b := addRoommate(t, roommates, "B")
	c := addRoommate(t, roommates, "C")
	power := addBill(t, bills, "Power", 100)
	assign(t, bills, power, a, b, c)

	resp, err := bills.GetBillBreakdown(context.Background(), connect.NewRequest(&api.GetBillBreakdownRequest{
		BillID: power.ID,
	}))
	if err != nil {
		t.Fatalf("GetBillBreakdown failed: %v", err)
	}

	if resp.Msg.Bill.ID != power.ID {
		t.Errorf("bill id: expected %s, got %s", power.ID, resp.Msg.Bill.ID)
	}
	if len(resp.Msg.Shares) != 3 {
		t.Fatalf("expected 3 shares, got %d", len(resp.Msg.Shares))
	}
	wantCents := []string{"33.33", "33.33", "33.34"}
	for i, s := range resp.Msg.Shares {
		if math.Abs(s.Share-100.0/3) > 1e-9 {
			t.Errorf("shares[%d]: expected %v, got %v", i, 100.0/3, s.Share)
		}
		if s.Cents != wantCents[i] {
			t.Errorf("shares[%d] cents: expected %s, got %s", i, wantCents[i], s.Cents)
		}
	}
}
