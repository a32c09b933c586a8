package rest

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/heartmarshall/pantry-backend/internal/domain"
	"github.com/heartmarshall/pantry-backend/internal/notify"
	"github.com/heartmarshall/pantry-backend/internal/service/pantry"
)

type pantryService interface {
	CreateItem(ctx context.Context, input pantry.CreateItemInput) (*domain.InventoryItem, error)
	GetItem(ctx context.Context, itemID uuid.UUID) (*domain.InventoryItem, error)
	ListItems(ctx context.Context, input pantry.ListItemsInput) (*pantry.ListItemsResult, error)
	UpdateItem(ctx context.Context, input pantry.UpdateItemInput) (*domain.InventoryItem, error)
	DeleteItem(ctx context.Context, itemID uuid.UUID) error
	UpdatePrice(ctx context.Context, input pantry.UpdatePriceInput) (*pantry.UpdatePriceResult, error)
	ConsumeItem(ctx context.Context, input pantry.ConsumeItemInput) (*pantry.ConsumeResult, error)
	AddToShoppingList(ctx context.Context, itemID uuid.UUID) (*domain.ShoppingEntry, error)
}

var (
	msgItemAdded    = notify.Messages{Success: "Item added", Failure: "Error adding item"}
	msgItemUpdated  = notify.Messages{Success: "Item updated", Failure: "Error updating item"}
	msgItemDeleted  = notify.Messages{Success: "Item removed", Failure: "Error removing item"}
	msgItemConsumed = notify.Messages{Success: "Usage recorded", Failure: "Error recording usage"}
	msgPriceUpdated = notify.Messages{Success: "Price updated", Failure: "Error updating price"}
	msgAddedToList  = notify.Messages{Success: "Added to shopping list", Failure: "Error adding to shopping list"}
)

// PantryHandler serves the pantry inventory endpoints.
type PantryHandler struct {
	svc pantryService
	rs  *responder
}

// NewPantryHandler creates a PantryHandler.
func NewPantryHandler(svc pantryService, notifier notify.Dispatcher, logger *slog.Logger) *PantryHandler {
	return &PantryHandler{
		svc: svc,
		rs:  &responder{log: logger.With("handler", "pantry"), notifier: notifier},
	}
}

type createItemRequest struct {
	Name              string           `json:"name"`
	Category          string           `json:"category"`
	Quantity          float64          `json:"quantity"`
	Unit              string           `json:"unit"`
	PurchasedAt       *time.Time       `json:"purchasedAt"`
	EstimatedDuration int              `json:"estimatedDuration"`
	CurrentPrice      decimal.Decimal  `json:"currentPrice"`
	LastPrice         *decimal.Decimal `json:"lastPrice"`
}

type updateItemRequest struct {
	Name              *string    `json:"name"`
	Category          *string    `json:"category"`
	Quantity          *float64   `json:"quantity"`
	Unit              *string    `json:"unit"`
	PurchasedAt       *time.Time `json:"purchasedAt"`
	EstimatedDuration *int       `json:"estimatedDuration"`
}

type consumeRequest struct {
	Amount float64 `json:"amount"`
}

type priceRequest struct {
	Price decimal.Decimal `json:"price"`
}

type listItemsResponse struct {
	Items      []itemResponse        `json:"items"`
	Categories []string              `json:"categories"`
	Summary    pantrySummaryResponse `json:"summary"`
}

type consumeResponse struct {
	Item    itemResponse `json:"item"`
	Removed bool         `json:"removed"`
}

type priceUpdateResponse struct {
	Item  itemResponse   `json:"item"`
	Delta *deltaResponse `json:"delta"`
}

// ListItems handles GET /api/v1/pantry/items?category=.
func (h *PantryHandler) ListItems(w http.ResponseWriter, r *http.Request) {
	result, err := h.svc.ListItems(r.Context(), pantry.ListItemsInput{
		Category: r.URL.Query().Get("category"),
	})
	if err != nil {
		h.rs.fail(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, listItemsResponse{
		Items:      toItemResponses(result.Items),
		Categories: result.Categories,
		Summary:    toPantrySummaryResponse(result.Summary),
	})
}

// GetItem handles GET /api/v1/pantry/items/{id}.
func (h *PantryHandler) GetItem(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}

	item, err := h.svc.GetItem(r.Context(), id)
	if err != nil {
		h.rs.fail(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toItemResponse(*item))
}

// CreateItem handles POST /api/v1/pantry/items.
func (h *PantryHandler) CreateItem(w http.ResponseWriter, r *http.Request) {
	var req createItemRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	item, err := h.svc.CreateItem(r.Context(), pantry.CreateItemInput{
		Name:              req.Name,
		Category:          req.Category,
		Quantity:          req.Quantity,
		Unit:              req.Unit,
		PurchasedAt:       req.PurchasedAt,
		EstimatedDuration: req.EstimatedDuration,
		CurrentPrice:      req.CurrentPrice,
		LastPrice:         req.LastPrice,
	})
	respondMutation(h.rs, w, r, http.StatusCreated, notify.From(item, err), msgItemAdded, presentItem)
}

// UpdateItem handles PATCH /api/v1/pantry/items/{id}.
func (h *PantryHandler) UpdateItem(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}
	var req updateItemRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	item, err := h.svc.UpdateItem(r.Context(), pantry.UpdateItemInput{
		ID:                id,
		Name:              req.Name,
		Category:          req.Category,
		Quantity:          req.Quantity,
		Unit:              req.Unit,
		PurchasedAt:       req.PurchasedAt,
		EstimatedDuration: req.EstimatedDuration,
	})
	respondMutation(h.rs, w, r, http.StatusOK, notify.From(item, err), msgItemUpdated, presentItem)
}

// DeleteItem handles DELETE /api/v1/pantry/items/{id}.
func (h *PantryHandler) DeleteItem(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}

	err := h.svc.DeleteItem(r.Context(), id)
	respondMutation[struct{}](h.rs, w, r, http.StatusOK, notify.From(struct{}{}, err), msgItemDeleted, nil)
}

// ConsumeItem handles POST /api/v1/pantry/items/{id}/consume.
func (h *PantryHandler) ConsumeItem(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}
	var req consumeRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	result, err := h.svc.ConsumeItem(r.Context(), pantry.ConsumeItemInput{ID: id, Amount: req.Amount})
	respondMutation(h.rs, w, r, http.StatusOK, notify.From(result, err), msgItemConsumed, func(res *pantry.ConsumeResult) any {
		return consumeResponse{Item: toItemResponse(*res.Item), Removed: res.Removed}
	})
}

// UpdatePrice handles PUT /api/v1/pantry/items/{id}/price.
func (h *PantryHandler) UpdatePrice(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}
	var req priceRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	result, err := h.svc.UpdatePrice(r.Context(), pantry.UpdatePriceInput{ID: id, Price: req.Price})
	respondMutation(h.rs, w, r, http.StatusOK, notify.From(result, err), msgPriceUpdated, func(res *pantry.UpdatePriceResult) any {
		return priceUpdateResponse{Item: toItemResponse(*res.Item), Delta: toDeltaResponse(res.Delta)}
	})
}

// AddToShoppingList handles POST /api/v1/pantry/items/{id}/shopping-list.
func (h *PantryHandler) AddToShoppingList(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}

	entry, err := h.svc.AddToShoppingList(r.Context(), id)
	respondMutation(h.rs, w, r, http.StatusCreated, notify.From(entry, err), msgAddedToList, presentEntry)
}

func presentItem(it *domain.InventoryItem) any { return toItemResponse(*it) }

func presentEntry(e *domain.ShoppingEntry) any { return toEntryResponse(*e) }
