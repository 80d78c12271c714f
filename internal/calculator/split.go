// Package calculator turns bills and their assignees into per-roommate
// obligations. Every function is pure: callers hand in a snapshot and get
// a fresh result, nothing is cached between calls.
package calculator

import "sort"

// Bill is the minimal bill information needed for allocation.
type Bill struct {
	ID     string
	Amount float64
}

// Roommate is the minimal roommate information needed for allocation.
type Roommate struct {
	ID   string
	Name string
}

// Link records that a roommate shares a bill.
type Link struct {
	BillID     string
	RoommateID string
}

// RoommateTotal is the sum of one roommate's shares.
type RoommateTotal struct {
	RoommateID string
	Name       string
	Total      float64
}

// ShareOf returns the equal split of amount among activeAssignees.
// ok is false when nobody is assigned; such a bill contributes to no total.
// The division is done at full precision, without rounding to cents.
func ShareOf(amount float64, activeAssignees int) (share float64, ok bool) {
	if activeAssignees <= 0 {
		return 0, false
	}
	return amount / float64(activeAssignees), true
}

// Assignees groups links by bill, dropping duplicates. Its set sizes are
// the divisors every total and breakdown uses.
func Assignees(links []Link) map[string]map[string]struct{} {
	byBill := make(map[string]map[string]struct{})
	for _, l := range links {
		set, ok := byBill[l.BillID]
		if !ok {
			set = make(map[string]struct{})
			byBill[l.BillID] = set
		}
		set[l.RoommateID] = struct{}{}
	}
	return byBill
}

// TotalFor sums the roommate's share of every bill it is linked to.
// links must only contain links of active roommates; the divisor of each
// bill is its number of distinct linked roommates. Returns 0 when the
// roommate has no assignments.
func TotalFor(roommateID string, bills []Bill, links []Link) float64 {
	byBill := Assignees(links)

	var total float64
	for _, b := range bills {
		set := byBill[b.ID]
		if _, linked := set[roommateID]; !linked {
			continue
		}
		if share, ok := ShareOf(b.Amount, len(set)); ok {
			total += share
		}
	}
	return total
}

// TotalsForAll computes a total for every roommate given.
// Links to roommates outside the list are ignored so they never enter a
// divisor. The result is ordered by name, ties broken by ID.
func TotalsForAll(roommates []Roommate, bills []Bill, links []Link) []RoommateTotal {
	active := make(map[string]struct{}, len(roommates))
	for _, r := range roommates {
		active[r.ID] = struct{}{}
	}

	live := make([]Link, 0, len(links))
	for _, l := range links {
		if _, ok := active[l.RoommateID]; ok {
			live = append(live, l)
		}
	}
	byBill := Assignees(live)

	sums := make(map[string]float64, len(roommates))
	for _, b := range bills {
		set := byBill[b.ID]
		share, ok := ShareOf(b.Amount, len(set))
		if !ok {
			continue
		}
		for id := range set {
			sums[id] += share
		}
	}

	totals := make([]RoommateTotal, 0, len(roommates))
	seen := make(map[string]bool, len(roommates))
	for _, r := range roommates {
		if seen[r.ID] {
			continue
		}
		seen[r.ID] = true
		totals = append(totals, RoommateTotal{RoommateID: r.ID, Name: r.Name, Total: sums[r.ID]})
	}

	sort.SliceStable(totals, func(i, j int) bool {
		if totals[i].Name != totals[j].Name {
			return totals[i].Name < totals[j].Name
		}
		return totals[i].RoommateID < totals[j].RoommateID
	})
	return totals
}
