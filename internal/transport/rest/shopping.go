package rest

import (
	"context"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/heartmarshall/pantry-backend/internal/domain"
	"github.com/heartmarshall/pantry-backend/internal/notify"
	"github.com/heartmarshall/pantry-backend/internal/service/shopping"
)

type shoppingService interface {
	CreateEntry(ctx context.Context, input shopping.CreateEntryInput) (*domain.ShoppingEntry, error)
	ListEntries(ctx context.Context, input shopping.ListEntriesInput) (*shopping.ListEntriesResult, error)
	UpdateEntry(ctx context.Context, input shopping.UpdateEntryInput) (*domain.ShoppingEntry, error)
	ToggleEntry(ctx context.Context, entryID uuid.UUID) (*domain.ShoppingEntry, error)
	DeleteEntry(ctx context.Context, entryID uuid.UUID) error
	ClearChecked(ctx context.Context) (int, error)
	ExportCSV(ctx context.Context) ([]byte, error)
}

const exportFilename = "shopping-list.csv"

var (
	msgEntryAdded   = notify.Messages{Success: "Added to shopping list", Failure: "Error adding entry"}
	msgEntryUpdated = notify.Messages{Success: "Entry updated", Failure: "Error updating entry"}
	msgEntryToggled = notify.Messages{Success: "Entry updated", Failure: "Error updating entry"}
	msgEntryDeleted = notify.Messages{Success: "Entry removed", Failure: "Error removing entry"}
	msgListCleared  = notify.Messages{Success: "Checked items cleared", Failure: "Error clearing checked items"}
)

// ShoppingHandler serves the shopping list endpoints.
type ShoppingHandler struct {
	svc shoppingService
	rs  *responder
}

// NewShoppingHandler creates a ShoppingHandler.
func NewShoppingHandler(svc shoppingService, notifier notify.Dispatcher, logger *slog.Logger) *ShoppingHandler {
	return &ShoppingHandler{
		svc: svc,
		rs:  &responder{log: logger.With("handler", "shopping"), notifier: notifier},
	}
}

type createEntryRequest struct {
	Name            string          `json:"name"`
	Quantity        float64         `json:"quantity"`
	Unit            string          `json:"unit"`
	EstimatedPrice  decimal.Decimal `json:"estimatedPrice"`
	Priority        string          `json:"priority"`
	Category        string          `json:"category"`
	Reason          string          `json:"reason"`
	DaysUntilNeeded *int            `json:"daysUntilNeeded"`
}

type updateEntryRequest struct {
	Name           *string          `json:"name"`
	Quantity       *float64         `json:"quantity"`
	Unit           *string          `json:"unit"`
	EstimatedPrice *decimal.Decimal `json:"estimatedPrice"`
	Priority       *string          `json:"priority"`
	Category       *string          `json:"category"`
}

type listEntriesResponse struct {
	Entries    []entryResponse         `json:"entries"`
	Categories []string                `json:"categories"`
	Summary    shoppingSummaryResponse `json:"summary"`
}

type clearCheckedResponse struct {
	Removed int `json:"removed"`
}

// ListEntries handles GET /api/v1/shopping/entries?showCompleted=&category=.
func (h *ShoppingHandler) ListEntries(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	input := shopping.ListEntriesInput{Category: q.Get("category")}
	if raw := q.Get("showCompleted"); raw != "" {
		show, err := strconv.ParseBool(raw)
		if err != nil {
			writeError(w, r, http.StatusBadRequest, "invalid showCompleted")
			return
		}
		input.ShowCompleted = &show
	}

	result, err := h.svc.ListEntries(r.Context(), input)
	if err != nil {
		h.rs.fail(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, listEntriesResponse{
		Entries:    toEntryResponses(result.Entries),
		Categories: result.Categories,
		Summary:    toShoppingSummaryResponse(result.Summary),
	})
}

// CreateEntry handles POST /api/v1/shopping/entries.
func (h *ShoppingHandler) CreateEntry(w http.ResponseWriter, r *http.Request) {
	var req createEntryRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	entry, err := h.svc.CreateEntry(r.Context(), shopping.CreateEntryInput{
		Name:            req.Name,
		Quantity:        req.Quantity,
		Unit:            req.Unit,
		EstimatedPrice:  req.EstimatedPrice,
		Priority:        domain.Priority(req.Priority),
		Category:        req.Category,
		Reason:          req.Reason,
		DaysUntilNeeded: req.DaysUntilNeeded,
	})
	respondMutation(h.rs, w, r, http.StatusCreated, notify.From(entry, err), msgEntryAdded, presentEntry)
}

// UpdateEntry handles PATCH /api/v1/shopping/entries/{id}.
func (h *ShoppingHandler) UpdateEntry(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}
	var req updateEntryRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	input := shopping.UpdateEntryInput{
		ID:             id,
		Name:           req.Name,
		Quantity:       req.Quantity,
		Unit:           req.Unit,
		EstimatedPrice: req.EstimatedPrice,
		Category:       req.Category,
	}
	if req.Priority != nil {
		p := domain.Priority(*req.Priority)
		input.Priority = &p
	}

	entry, err := h.svc.UpdateEntry(r.Context(), input)
	respondMutation(h.rs, w, r, http.StatusOK, notify.From(entry, err), msgEntryUpdated, presentEntry)
}

// ToggleEntry handles POST /api/v1/shopping/entries/{id}/toggle.
func (h *ShoppingHandler) ToggleEntry(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}

	entry, err := h.svc.ToggleEntry(r.Context(), id)
	respondMutation(h.rs, w, r, http.StatusOK, notify.From(entry, err), msgEntryToggled, presentEntry)
}

// DeleteEntry handles DELETE /api/v1/shopping/entries/{id}.
func (h *ShoppingHandler) DeleteEntry(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}

	err := h.svc.DeleteEntry(r.Context(), id)
	respondMutation[struct{}](h.rs, w, r, http.StatusOK, notify.From(struct{}{}, err), msgEntryDeleted, nil)
}

// ClearChecked handles DELETE /api/v1/shopping/entries/checked.
func (h *ShoppingHandler) ClearChecked(w http.ResponseWriter, r *http.Request) {
	n, err := h.svc.ClearChecked(r.Context())
	respondMutation(h.rs, w, r, http.StatusOK, notify.From(n, err), msgListCleared, func(n int) any {
		return clearCheckedResponse{Removed: n}
	})
}

// Export handles GET /api/v1/shopping/export.
func (h *ShoppingHandler) Export(w http.ResponseWriter, r *http.Request) {
	data, err := h.svc.ExportCSV(r.Context())
	if err != nil {
		h.rs.fail(w, r, err)
		return
	}

	w.Header().Set("Content-Type", "text/csv; charset=utf-8")
	w.Header().Set("Content-Disposition", `attachment; filename="`+exportFilename+`"`)
	w.WriteHeader(http.StatusOK)
	w.Write(data) //nolint:errcheck
}
