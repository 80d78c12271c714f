// Package rest serves the household over plain JSON routes under /api.
// Lists are returned as bare arrays and failures as {"error": "..."}.
package rest

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/shopspring/decimal"

	"github.com/mmynk/housesplit/internal/models"
	"github.com/mmynk/housesplit/internal/query"
	"github.com/mmynk/housesplit/internal/storage"
	"github.com/mmynk/housesplit/pkg/api"
)

// maxBodyBytes caps request bodies; every payload here is a handful of fields.
const maxBodyBytes = 1 << 20

// Handler serves the REST routes backed by a store.
type Handler struct {
	store  storage.Store
	reader *query.Reader
}

// NewHandler creates a Handler over the given store.
func NewHandler(store storage.Store) *Handler {
	return &Handler{store: store, reader: query.New(store)}
}

// Mount registers /health and the /api routes on r.
func (h *Handler) Mount(r chi.Router) {
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})

	r.Route("/api", func(r chi.Router) {
		r.Route("/roommates", func(r chi.Router) {
			r.Get("/", h.listRoommates)
			r.Post("/", h.addRoommate)
			r.Get("/totals", h.allTotals)
			r.Delete("/{id}", h.deactivateRoommate)
			r.Get("/{id}/total", h.roommateTotal)
		})
		r.Route("/bills", func(r chi.Router) {
			r.Get("/", h.listBills)
			r.Post("/", h.addBill)
			r.Put("/{id}", h.updateBill)
			r.Delete("/{id}", h.deactivateBill)
			r.Get("/{id}/assignments", h.listAssignments)
			r.Get("/{id}/breakdown", h.breakdown)
			r.Post("/{id}/assign/{roommateID}", h.assign)
			r.Delete("/{id}/assign/{roommateID}", h.unassign)
		})
	})
}

type roommateRequest struct {
	Name string `json:"name"`
}

// billRequest accepts amount as a JSON number or a numeric string.
type billRequest struct {
	Name    string          `json:"name"`
	Amount  decimal.Decimal `json:"amount"`
	DueDate string          `json:"due_date"`
}

func (b billRequest) toBill(id string) (*models.Bill, error) {
	due, err := storage.ParseDueDate(b.DueDate)
	if err != nil {
		return nil, err
	}
	return &models.Bill{
		ID:      id,
		Name:    b.Name,
		Amount:  b.Amount.InexactFloat64(),
		DueDate: due,
	}, nil
}

type assignmentJSON struct {
	BillID       string `json:"bill_id"`
	RoommateID   string `json:"roommate_id"`
	RoommateName string `json:"roommate_name"`
	CreatedAt    int64  `json:"created_at"`
}

type totalJSON struct {
	ID    string  `json:"id"`
	Name  string  `json:"name"`
	Total float64 `json:"total"`
}

type messageJSON struct {
	Message string `json:"message"`
}

func (h *Handler) listRoommates(w http.ResponseWriter, r *http.Request) {
	roommates, err := h.store.ListActiveRoommates(r.Context())
	if err != nil {
		writeStoreError(w, err)
		return
	}
	out := make([]*api.Roommate, len(roommates))
	for i, rm := range roommates {
		out[i] = toRoommateJSON(rm)
	}
	writeJSON(w, http.StatusOK, out)
}

func (h *Handler) addRoommate(w http.ResponseWriter, r *http.Request) {
	var req roommateRequest
	if !decode(w, r, &req) {
		return
	}
	roommate := &models.Roommate{Name: req.Name}
	if err := h.store.CreateRoommate(r.Context(), roommate); err != nil {
		writeStoreError(w, err)
		return
	}
	slog.Info("Roommate added", "roommate_id", roommate.ID)
	writeJSON(w, http.StatusCreated, toRoommateJSON(roommate))
}

func (h *Handler) deactivateRoommate(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if err := h.store.DeactivateRoommate(r.Context(), id); err != nil {
		writeStoreError(w, err)
		return
	}
	slog.Info("Roommate deactivated", "roommate_id", id)
	writeJSON(w, http.StatusOK, messageJSON{Message: "Roommate deactivated successfully"})
}

func (h *Handler) roommateTotal(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	total, err := h.reader.GetRoommateTotal(r.Context(), id)
	if err != nil {
		writeStoreError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, api.GetRoommateTotalResponse{RoommateID: id, Total: total})
}

func (h *Handler) allTotals(w http.ResponseWriter, r *http.Request) {
	totals, err := h.reader.GetAllRoommateTotals(r.Context())
	if err != nil {
		writeStoreError(w, err)
		return
	}
	out := make([]totalJSON, len(totals))
	for i, t := range totals {
		out[i] = totalJSON{ID: t.RoommateID, Name: t.Name, Total: t.Total}
	}
	writeJSON(w, http.StatusOK, out)
}

func (h *Handler) listBills(w http.ResponseWriter, r *http.Request) {
	bills, err := h.store.ListActiveBills(r.Context())
	if err != nil {
		writeStoreError(w, err)
		return
	}
	out := make([]*api.Bill, len(bills))
	for i, b := range bills {
		out[i] = toBillJSON(b)
	}
	writeJSON(w, http.StatusOK, out)
}

func (h *Handler) addBill(w http.ResponseWriter, r *http.Request) {
	var req billRequest
	if !decode(w, r, &req) {
		return
	}
	bill, err := req.toBill("")
	if err != nil {
		writeStoreError(w, err)
		return
	}
	if err := h.store.CreateBill(r.Context(), bill); err != nil {
		writeStoreError(w, err)
		return
	}
	slog.Info("Bill added", "bill_id", bill.ID, "amount", bill.Amount)
	writeJSON(w, http.StatusCreated, toBillJSON(bill))
}

func (h *Handler) updateBill(w http.ResponseWriter, r *http.Request) {
	var req billRequest
	if !decode(w, r, &req) {
		return
	}
	bill, err := req.toBill(chi.URLParam(r, "id"))
	if err != nil {
		writeStoreError(w, err)
		return
	}
	if err := h.store.UpdateBill(r.Context(), bill); err != nil {
		writeStoreError(w, err)
		return
	}
	slog.Info("Bill updated", "bill_id", bill.ID, "amount", bill.Amount)
	writeJSON(w, http.StatusOK, toBillJSON(bill))
}

func (h *Handler) deactivateBill(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if err := h.store.DeactivateBill(r.Context(), id); err != nil {
		writeStoreError(w, err)
		return
	}
	slog.Info("Bill deactivated", "bill_id", id)
	writeJSON(w, http.StatusOK, messageJSON{Message: "Bill deactivated successfully"})
}

func (h *Handler) listAssignments(w http.ResponseWriter, r *http.Request) {
	billID := chi.URLParam(r, "id")
	assignees, err := h.store.ListAssignments(r.Context(), billID)
	if err != nil {
		writeStoreError(w, err)
		return
	}
	out := make([]assignmentJSON, len(assignees))
	for i, a := range assignees {
		out[i] = assignmentJSON{
			BillID:       billID,
			RoommateID:   a.RoommateID,
			RoommateName: a.RoommateName,
			CreatedAt:    a.AssignedAt,
		}
	}
	writeJSON(w, http.StatusOK, out)
}

func (h *Handler) breakdown(w http.ResponseWriter, r *http.Request) {
	b, err := h.reader.GetBillBreakdown(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeStoreError(w, err)
		return
	}
	shares := make([]*api.Share, len(b.Shares))
	for i, s := range b.Shares {
		shares[i] = &api.Share{
			RoommateID:   s.RoommateID,
			RoommateName: s.RoommateName,
			Share:        s.Share,
			Cents:        s.Cents.StringFixed(2),
		}
	}
	writeJSON(w, http.StatusOK, api.GetBillBreakdownResponse{Bill: toBillJSON(b.Bill), Shares: shares})
}

func (h *Handler) assign(w http.ResponseWriter, r *http.Request) {
	billID, roommateID := chi.URLParam(r, "id"), chi.URLParam(r, "roommateID")
	if err := h.store.Assign(r.Context(), billID, roommateID); err != nil {
		writeStoreError(w, err)
		return
	}
	slog.Info("Bill assigned", "bill_id", billID, "roommate_id", roommateID)
	writeJSON(w, http.StatusOK, messageJSON{Message: "Bill assigned successfully"})
}

func (h *Handler) unassign(w http.ResponseWriter, r *http.Request) {
	billID, roommateID := chi.URLParam(r, "id"), chi.URLParam(r, "roommateID")
	if err := h.store.Unassign(r.Context(), billID, roommateID); err != nil {
		writeStoreError(w, err)
		return
	}
	slog.Info("Bill assignment removed", "bill_id", billID, "roommate_id", roommateID)
	writeJSON(w, http.StatusOK, messageJSON{Message: "Bill assignment removed successfully"})
}

func toRoommateJSON(r *models.Roommate) *api.Roommate {
	return &api.Roommate{ID: r.ID, Name: r.Name, IsActive: r.IsActive, CreatedAt: r.CreatedAt}
}

func toBillJSON(b *models.Bill) *api.Bill {
	return &api.Bill{
		ID:        b.ID,
		Name:      b.Name,
		Amount:    b.Amount,
		DueDate:   b.DueDateString(),
		IsActive:  b.IsActive,
		CreatedAt: b.CreatedAt,
	}
}

// decode reads a JSON body into v, writing a 400 on failure.
func decode(w http.ResponseWriter, r *http.Request, v any) bool {
	if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes)).Decode(v); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body: "+err.Error())
		return false
	}
	return true
}

// writeJSON writes a JSON response with the given status code.
func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.Error("Failed to encode response", "error", err)
	}
}

// writeError writes a JSON error response.
func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}

// writeStoreError maps store and query errors to HTTP status codes.
func writeStoreError(w http.ResponseWriter, err error) {
	switch {
	case storage.IsValidation(err):
		writeError(w, http.StatusBadRequest, err.Error())
	case storage.IsNotFound(err):
		writeError(w, http.StatusNotFound, err.Error())
	default:
		slog.Error("Request failed", "error", err)
		writeError(w, http.StatusInternalServerError, err.Error())
	}
}
