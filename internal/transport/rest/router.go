package rest

import (
	"net/http"

	"github.com/heartmarshall/pantry-backend/internal/transport/middleware"
)

// APIPrefix is the mount point of every authenticated endpoint.
const APIPrefix = "/api/v1"

// Handlers groups the endpoint handlers served by the router.
type Handlers struct {
	Health          *HealthHandler
	Pantry          *PantryHandler
	Shopping        *ShoppingHandler
	Recommendations *RecommendationHandler
	Pricing         *PricingHandler
	Dashboard       *DashboardHandler
}

// NewRouter builds the HTTP handler. Probes are public. Everything under
// /api/v1 goes through auth. outer wraps the whole mux, so CORS preflight is
// answered before routing.
func NewRouter(h Handlers, auth middleware.Middleware, outer ...middleware.Middleware) http.Handler {
	api := http.NewServeMux()

	api.HandleFunc("GET /api/v1/pantry/items", h.Pantry.ListItems)
	api.HandleFunc("POST /api/v1/pantry/items", h.Pantry.CreateItem)
	api.HandleFunc("GET /api/v1/pantry/items/{id}", h.Pantry.GetItem)
	api.HandleFunc("PATCH /api/v1/pantry/items/{id}", h.Pantry.UpdateItem)
	api.HandleFunc("DELETE /api/v1/pantry/items/{id}", h.Pantry.DeleteItem)
	api.HandleFunc("POST /api/v1/pantry/items/{id}/consume", h.Pantry.ConsumeItem)
	api.HandleFunc("PUT /api/v1/pantry/items/{id}/price", h.Pantry.UpdatePrice)
	api.HandleFunc("POST /api/v1/pantry/items/{id}/shopping-list", h.Pantry.AddToShoppingList)

	api.HandleFunc("GET /api/v1/shopping/entries", h.Shopping.ListEntries)
	api.HandleFunc("POST /api/v1/shopping/entries", h.Shopping.CreateEntry)
	api.HandleFunc("DELETE /api/v1/shopping/entries/checked", h.Shopping.ClearChecked)
	api.HandleFunc("PATCH /api/v1/shopping/entries/{id}", h.Shopping.UpdateEntry)
	api.HandleFunc("POST /api/v1/shopping/entries/{id}/toggle", h.Shopping.ToggleEntry)
	api.HandleFunc("DELETE /api/v1/shopping/entries/{id}", h.Shopping.DeleteEntry)
	api.HandleFunc("GET /api/v1/shopping/export", h.Shopping.Export)

	api.HandleFunc("GET /api/v1/recommendations", h.Recommendations.List)
	api.HandleFunc("POST /api/v1/recommendations", h.Recommendations.Create)
	api.HandleFunc("DELETE /api/v1/recommendations/{id}", h.Recommendations.Dismiss)
	api.HandleFunc("POST /api/v1/recommendations/{id}/promote", h.Recommendations.Promote)

	api.HandleFunc("GET /api/v1/prices/trends", h.Pricing.ListTrends)
	api.HandleFunc("GET /api/v1/prices/trends/{itemId}", h.Pricing.GetTrend)

	api.HandleFunc("GET /api/v1/dashboard", h.Dashboard.Overview)

	root := http.NewServeMux()
	root.HandleFunc("GET /live", h.Health.Live)
	root.HandleFunc("GET /ready", h.Health.Ready)
	root.HandleFunc("GET /health", h.Health.Health)
	root.Handle(APIPrefix+"/", auth(api))

	return middleware.Chain(outer...)(root)
}
