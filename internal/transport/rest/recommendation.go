package rest

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/heartmarshall/pantry-backend/internal/domain"
	"github.com/heartmarshall/pantry-backend/internal/notify"
	"github.com/heartmarshall/pantry-backend/internal/service/recommendation"
)

type recommendationService interface {
	ListRecommendations(ctx context.Context, input recommendation.ListInput) (*recommendation.ListResult, error)
	CreateRecommendation(ctx context.Context, input recommendation.CreateInput) (*domain.Recommendation, error)
	DismissRecommendation(ctx context.Context, recID uuid.UUID) error
	PromoteRecommendation(ctx context.Context, recID uuid.UUID) (*domain.ShoppingEntry, error)
}

var (
	msgRecommendationAdded     = notify.Messages{Success: "Recommendation saved", Failure: "Error saving recommendation"}
	msgRecommendationDismissed = notify.Messages{Success: "Recommendation dismissed", Failure: "Error dismissing recommendation"}
	msgRecommendationPromoted  = notify.Messages{Success: "Added to cart", Failure: "Error adding to cart"}
)

// RecommendationHandler serves the purchase recommendation endpoints.
type RecommendationHandler struct {
	svc recommendationService
	rs  *responder
}

// NewRecommendationHandler creates a RecommendationHandler.
func NewRecommendationHandler(svc recommendationService, notifier notify.Dispatcher, logger *slog.Logger) *RecommendationHandler {
	return &RecommendationHandler{
		svc: svc,
		rs:  &responder{log: logger.With("handler", "recommendation"), notifier: notifier},
	}
}

type createRecommendationRequest struct {
	ItemName        string          `json:"itemName"`
	Type            string          `json:"type"`
	Reason          string          `json:"reason"`
	Priority        string          `json:"priority"`
	Savings         decimal.Decimal `json:"savings"`
	DaysUntilNeeded int             `json:"daysUntilNeeded"`
	CurrentPrice    decimal.Decimal `json:"currentPrice"`
	PreviousPrice   decimal.Decimal `json:"previousPrice"`
	Confidence      int             `json:"confidence"`
}

type listRecommendationsResponse struct {
	Recommendations []recommendationResponse `json:"recommendations"`
	TotalSavings    decimal.Decimal          `json:"totalSavings"`
	Types           []string                 `json:"types"`
}

// List handles GET /api/v1/recommendations?type=.
func (h *RecommendationHandler) List(w http.ResponseWriter, r *http.Request) {
	result, err := h.svc.ListRecommendations(r.Context(), recommendation.ListInput{
		Type: r.URL.Query().Get("type"),
	})
	if err != nil {
		h.rs.fail(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, listRecommendationsResponse{
		Recommendations: toRecommendationResponses(result.Recommendations),
		TotalSavings:    result.TotalSavings,
		Types:           result.Types,
	})
}

// Create handles POST /api/v1/recommendations.
func (h *RecommendationHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req createRecommendationRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	rec, err := h.svc.CreateRecommendation(r.Context(), recommendation.CreateInput{
		ItemName:        req.ItemName,
		Type:            domain.RecommendationType(req.Type),
		Reason:          req.Reason,
		Priority:        domain.Priority(req.Priority),
		Savings:         req.Savings,
		DaysUntilNeeded: req.DaysUntilNeeded,
		CurrentPrice:    req.CurrentPrice,
		PreviousPrice:   req.PreviousPrice,
		Confidence:      req.Confidence,
	})
	respondMutation(h.rs, w, r, http.StatusCreated, notify.From(rec, err), msgRecommendationAdded, func(rec *domain.Recommendation) any {
		return toRecommendationResponse(*rec)
	})
}

// Dismiss handles DELETE /api/v1/recommendations/{id}.
func (h *RecommendationHandler) Dismiss(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}

	err := h.svc.DismissRecommendation(r.Context(), id)
	respondMutation[struct{}](h.rs, w, r, http.StatusOK, notify.From(struct{}{}, err), msgRecommendationDismissed, nil)
}

// Promote handles POST /api/v1/recommendations/{id}/promote.
func (h *RecommendationHandler) Promote(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}

	entry, err := h.svc.PromoteRecommendation(r.Context(), id)
	respondMutation(h.rs, w, r, http.StatusCreated, notify.From(entry, err), msgRecommendationPromoted, presentEntry)
}
