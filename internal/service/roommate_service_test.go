package service

import (
	"context"
	"testing"

	"connectrpc.com/connect"

	"github.com/mmynk/housesplit/pkg/api"
)

func TestAddRoommate(t *testing.T) {
	client, _, cleanup := setupTestServer(t)
	defer cleanup()

	resp, err := client.AddRoommate(context.Background(), connect.NewRequest(&api.AddRoommateRequest{
		Name: "  Alice ",
	}))
	if err != nil {
		t.Fatalf("AddRoommate failed: %v", err)
	}

	if resp.Msg.Roommate == nil {
		t.Fatal("expected roommate in response")
	}
	if resp.Msg.Roommate.ID == "" {
		t.Error("expected non-empty roommate ID")
	}
	if resp.Msg.Roommate.Name != "Alice" {
		t.Errorf("name: expected 'Alice', got '%s'", resp.Msg.Roommate.Name)
	}
	if !resp.Msg.Roommate.IsActive {
		t.Error("expected roommate to be active")
	}
	if resp.Msg.Roommate.CreatedAt == 0 {
		t.Error("expected non-zero CreatedAt")
	}
}

func TestAddRoommate_EmptyName(t *testing.T) {
	client, _, cleanup := setupTestServer(t)
	defer cleanup()

	_, err := client.AddRoommate(context.Background(), connect.NewRequest(&api.AddRoommateRequest{
		Name: "   ",
	}))
	expectCode(t, err, connect.CodeInvalidArgument)
}

func TestListRoommates(t *testing.T) {
	client, _, cleanup := setupTestServer(t)
	defer cleanup()
	ctx := context.Background()

	addRoommate(t, client, "Carol")
	bob := addRoommate(t, client, "Bob")
	addRoommate(t, client, "Alice")

	if _, err := client.DeactivateRoommate(ctx, connect.NewRequest(&api.DeactivateRoommateRequest{RoommateID: bob.ID})); err != nil {
		t.Fatalf("DeactivateRoommate failed: %v", err)
	}

	resp, err := client.ListRoommates(ctx, connect.NewRequest(&api.ListRoommatesRequest{}))
	if err != nil {
		t.Fatalf("ListRoommates failed: %v", err)
	}

	if len(resp.Msg.Roommates) != 2 {
		t.Fatalf("expected 2 roommates, got %d", len(resp.Msg.Roommates))
	}
	if resp.Msg.Roommates[0].Name != "Alice" || resp.Msg.Roommates[1].Name != "Carol" {
		t.Errorf("expected [Alice Carol], got [%s %s]", resp.Msg.Roommates[0].Name, resp.Msg.Roommates[1].Name)
	}
}

func TestListRoommates_Empty(t *testing.T) {
	client, _, cleanup := setupTestServer(t)
	defer cleanup()

	resp, err := client.ListRoommates(context.Background(), connect.NewRequest(&api.ListRoommatesRequest{}))
	if err != nil {
		t.Fatalf("ListRoommates failed: %v", err)
	}
	if len(resp.Msg.Roommates) != 0 {
		t.Errorf("expected 0 roommates, got %d", len(resp.Msg.Roommates))
	}
}

func TestDeactivateRoommate_Idempotent(t *testing.T) {
	client, _, cleanup := setupTestServer(t)
	defer cleanup()
	ctx := context.Background()

	alice := addRoommate(t, client, "Alice")
	for i := 0; i < 2; i++ {
		if _, err := client.DeactivateRoommate(ctx, connect.NewRequest(&api.DeactivateRoommateRequest{RoommateID: alice.ID})); err != nil {
			t.Fatalf("DeactivateRoommate #%d failed: %v", i+1, err)
		}
	}
	if _, err := client.DeactivateRoommate(ctx, connect.NewRequest(&api.DeactivateRoommateRequest{RoommateID: "nonexistent-id"})); err != nil {
		t.Errorf("DeactivateRoommate(unknown) failed: %v", err)
	}
}

func TestGetRoommateTotal_NoAssignments(t *testing.T) {
	roommates, bills, cleanup := setupTestServer(t)
	defer cleanup()

	alice := addRoommate(t, roommates, "Alice")
	addBill(t, bills, "Rent", 1200)

	resp, err := roommates.GetRoommateTotal(context.Background(), connect.NewRequest(&api.GetRoommateTotalRequest{
		RoommateID: alice.ID,
	}))
	if err != nil {
		t.Fatalf("GetRoommateTotal failed: %v", err)
	}
	if resp.Msg.RoommateID != alice.ID {
		t.Errorf("roommate_id: expected %s, got %s", alice.ID, resp.Msg.RoommateID)
	}
	if resp.Msg.Total != 0 {
		t.Errorf("total: expected 0, got %v", resp.Msg.Total)
	}
}
