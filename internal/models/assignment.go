package models

// Assignment links a bill to a roommate who shares it.
// The pair (BillID, RoommateID) is unique.
type Assignment struct {
	BillID     string
	RoommateID string
	CreatedAt  int64
}

// Snapshot is a mutually consistent view of everything that takes part in
// allocation: active roommates, active bills, and the links joining an
// active bill to an active roommate.
type Snapshot struct {
	Roommates   []*Roommate
	Bills       []*Bill
	Assignments []*Assignment
}
