package rest

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/shopspring/decimal"

	"github.com/heartmarshall/pantry-backend/internal/service/dashboard"
)

type dashboardService interface {
	GetOverview(ctx context.Context) (*dashboard.Overview, error)
}

// DashboardHandler serves the combined overview.
type DashboardHandler struct {
	svc dashboardService
	rs  *responder
}

// NewDashboardHandler creates a DashboardHandler.
func NewDashboardHandler(svc dashboardService, logger *slog.Logger) *DashboardHandler {
	return &DashboardHandler{
		svc: svc,
		rs:  &responder{log: logger.With("handler", "dashboard")},
	}
}

type overviewResponse struct {
	Items              []itemResponse           `json:"items"`
	Entries            []entryResponse          `json:"entries"`
	Pantry             pantrySummaryResponse    `json:"pantry"`
	Shopping           shoppingSummaryResponse  `json:"shopping"`
	TopRecommendations []recommendationResponse `json:"topRecommendations"`
	TotalSavings       decimal.Decimal          `json:"totalSavings"`
}

// Overview handles GET /api/v1/dashboard.
func (h *DashboardHandler) Overview(w http.ResponseWriter, r *http.Request) {
	ov, err := h.svc.GetOverview(r.Context())
	if err != nil {
		h.rs.fail(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, overviewResponse{
		Items:              toItemResponses(ov.Snapshot.Items),
		Entries:            toEntryResponses(ov.Snapshot.Entries),
		Pantry:             toPantrySummaryResponse(ov.Pantry),
		Shopping:           toShoppingSummaryResponse(ov.Shopping),
		TopRecommendations: toRecommendationResponses(ov.TopRecommendations),
		TotalSavings:       ov.TotalSavings,
	})
}
