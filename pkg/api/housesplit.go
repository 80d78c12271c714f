// Package api defines the housesplit.v1 wire messages used by the Connect
// services in apiconnect. Messages are encoded as JSON with snake_case keys.
package api

// Roommate is a household member.
type Roommate struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	IsActive  bool   `json:"is_active"`
	CreatedAt int64  `json:"created_at"`
}

// Bill is a recurring or one-off household charge.
type Bill struct {
	ID     string  `json:"id"`
	Name   string  `json:"name"`
	Amount float64 `json:"amount"`
	// DueDate is YYYY-MM-DD, empty when unset.
	DueDate   string `json:"due_date,omitempty"`
	IsActive  bool   `json:"is_active"`
	CreatedAt int64  `json:"created_at"`
}

// Assignee is a roommate assigned to a bill.
type Assignee struct {
	RoommateID   string `json:"roommate_id"`
	RoommateName string `json:"roommate_name"`
	AssignedAt   int64  `json:"assigned_at"`
}

// RoommateTotal is what one roommate owes across all active bills.
type RoommateTotal struct {
	RoommateID string  `json:"roommate_id"`
	Name       string  `json:"name"`
	Total      float64 `json:"total"`
}

// Share is one assignee's portion of a bill.
type Share struct {
	RoommateID   string  `json:"roommate_id"`
	RoommateName string  `json:"roommate_name"`
	Share        float64 `json:"share"`
	// Cents is the share rounded to cents, as a decimal string.
	Cents string `json:"cents"`
}

// RoommateService messages.

type AddRoommateRequest struct {
	Name string `json:"name"`
}

type AddRoommateResponse struct {
	Roommate *Roommate `json:"roommate"`
}

type DeactivateRoommateRequest struct {
	RoommateID string `json:"roommate_id"`
}

type DeactivateRoommateResponse struct{}

type ListRoommatesRequest struct{}

type ListRoommatesResponse struct {
	Roommates []*Roommate `json:"roommates"`
}

type GetRoommateTotalRequest struct {
	RoommateID string `json:"roommate_id"`
}

type GetRoommateTotalResponse struct {
	RoommateID string  `json:"roommate_id"`
	Total      float64 `json:"total"`
}

type GetAllRoommateTotalsRequest struct{}

type GetAllRoommateTotalsResponse struct {
	Totals []*RoommateTotal `json:"totals"`
}

// BillService messages.

type AddBillRequest struct {
	Name    string  `json:"name"`
	Amount  float64 `json:"amount"`
	DueDate string  `json:"due_date,omitempty"`
}

type AddBillResponse struct {
	Bill *Bill `json:"bill"`
}

type UpdateBillRequest struct {
	BillID  string  `json:"bill_id"`
	Name    string  `json:"name"`
	Amount  float64 `json:"amount"`
	DueDate string  `json:"due_date,omitempty"`
}

type UpdateBillResponse struct {
	Bill *Bill `json:"bill"`
}

type DeactivateBillRequest struct {
	BillID string `json:"bill_id"`
}

type DeactivateBillResponse struct{}

type ListBillsRequest struct{}

type ListBillsResponse struct {
	Bills []*Bill `json:"bills"`
}

type AssignRequest struct {
	BillID     string `json:"bill_id"`
	RoommateID string `json:"roommate_id"`
}

type AssignResponse struct{}

type UnassignRequest struct {
	BillID     string `json:"bill_id"`
	RoommateID string `json:"roommate_id"`
}

type UnassignResponse struct{}

type ListAssignmentsRequest struct {
	BillID string `json:"bill_id"`
}

type ListAssignmentsResponse struct {
	Assignees []*Assignee `json:"assignees"`
}

type GetBillBreakdownRequest struct {
	BillID string `json:"bill_id"`
}

type GetBillBreakdownResponse struct {
	Bill   *Bill    `json:"bill"`
	Shares []*Share `json:"shares"`
}
