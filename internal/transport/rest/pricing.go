package rest

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/heartmarshall/pantry-backend/internal/domain"
	"github.com/heartmarshall/pantry-backend/internal/service/pricing"
)

type pricingService interface {
	GetTrend(ctx context.Context, input pricing.GetTrendInput) (*domain.PriceTrend, error)
	ListTrends(ctx context.Context, r domain.TrendRange) ([]domain.PriceTrend, error)
}

// PricingHandler serves the price trend endpoints. It is read-only.
type PricingHandler struct {
	svc pricingService
	rs  *responder
}

// NewPricingHandler creates a PricingHandler.
func NewPricingHandler(svc pricingService, logger *slog.Logger) *PricingHandler {
	return &PricingHandler{
		svc: svc,
		rs:  &responder{log: logger.With("handler", "pricing")},
	}
}

type listTrendsResponse struct {
	Range  string          `json:"range"`
	Trends []trendResponse `json:"trends"`
}

// ListTrends handles GET /api/v1/prices/trends?range=.
func (h *PricingHandler) ListTrends(w http.ResponseWriter, r *http.Request) {
	rng := domain.TrendRange(r.URL.Query().Get("range"))

	trends, err := h.svc.ListTrends(r.Context(), rng)
	if err != nil {
		h.rs.fail(w, r, err)
		return
	}

	if rng == "" {
		rng = pricing.DefaultRange
	}
	out := make([]trendResponse, len(trends))
	for i, t := range trends {
		out[i] = toTrendResponse(t)
	}
	writeJSON(w, http.StatusOK, listTrendsResponse{Range: rng.String(), Trends: out})
}

// GetTrend handles GET /api/v1/prices/trends/{itemId}?range=.
func (h *PricingHandler) GetTrend(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "itemId")
	if !ok {
		return
	}

	trend, err := h.svc.GetTrend(r.Context(), pricing.GetTrendInput{
		ItemID: id,
		Range:  domain.TrendRange(r.URL.Query().Get("range")),
	})
	if err != nil {
		h.rs.fail(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toTrendResponse(*trend))
}
