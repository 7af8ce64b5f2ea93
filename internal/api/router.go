// Package api mounts the marketplace handlers on a ServeMux.
package api

import (
	"net/http"

	"github.com/aaravmahajanofficial/farm-marketplace/internal/api/handlers"
	"github.com/aaravmahajanofficial/farm-marketplace/internal/api/middleware"
	"github.com/aaravmahajanofficial/farm-marketplace/internal/metrics"
	service "github.com/aaravmahajanofficial/farm-marketplace/internal/services"
	"github.com/go-playground/validator/v10"
)

const prefix = "/api/v1"

type Services struct {
	Marketplace service.MarketplaceService
	Sessions    service.SessionService
	Insights    service.InsightsService
	Validate    *validator.Validate
	// Health serves GET /health when set.
	Health http.Handler
}

// NewRouter returns the full handler chain: logging, then metrics, then
// the routes.
func NewRouter(s Services) http.Handler {
	marketplaceHandler := handlers.NewMarketplaceHandler(s.Marketplace)
	sessionHandler := handlers.NewSessionHandler(s.Sessions, s.Validate)
	buyerHandler := handlers.NewBuyerHandler(s.Sessions, s.Validate)
	listingHandler := handlers.NewListingHandler(s.Sessions)
	insightsHandler := handlers.NewInsightsHandler(s.Insights)

	session := func(h http.HandlerFunc) http.Handler {
		return middleware.RequireSession(h)
	}

	mux := http.NewServeMux()

	mux.HandleFunc("GET "+prefix+"/products", marketplaceHandler.SearchProducts())
	mux.HandleFunc("GET "+prefix+"/products/aggregates", marketplaceHandler.Aggregates())
	mux.HandleFunc("GET "+prefix+"/products/filters", marketplaceHandler.FilterOptions())

	mux.HandleFunc("POST "+prefix+"/sessions", sessionHandler.StartSession())
	mux.Handle("GET "+prefix+"/session", session(sessionHandler.GetSession()))
	mux.Handle("POST "+prefix+"/session/role", session(sessionHandler.SelectRole()))
	mux.Handle("POST "+prefix+"/session/mode", session(sessionHandler.SwitchMode()))
	mux.Handle("POST "+prefix+"/session/login", session(sessionHandler.Login()))
	mux.Handle("POST "+prefix+"/session/signup/farmer", session(sessionHandler.SignupFarmer()))
	mux.Handle("POST "+prefix+"/session/signup/buyer", session(sessionHandler.SignupBuyer()))
	mux.Handle("POST "+prefix+"/session/cancel", session(sessionHandler.Cancel()))
	mux.Handle("POST "+prefix+"/session/logout", session(sessionHandler.Logout()))
	mux.Handle("PATCH "+prefix+"/session/profile", session(sessionHandler.UpdateProfile()))

	mux.Handle("GET "+prefix+"/cart", session(buyerHandler.GetCart()))
	mux.Handle("POST "+prefix+"/cart/items", session(buyerHandler.AddItem()))
	mux.Handle("GET "+prefix+"/saved", session(buyerHandler.GetSaved()))
	mux.Handle("POST "+prefix+"/saved/{id}", session(buyerHandler.ToggleSaved()))

	mux.Handle("GET "+prefix+"/listings", session(listingHandler.ListListings()))
	mux.Handle("POST "+prefix+"/listings", session(listingHandler.CreateListing()))
	mux.Handle("GET "+prefix+"/listings/aggregates", session(listingHandler.Aggregates()))
	mux.Handle("DELETE "+prefix+"/listings/{id}", session(listingHandler.DeleteListing()))

	mux.HandleFunc("GET "+prefix+"/orders", insightsHandler.ListOrders())
	mux.HandleFunc("GET "+prefix+"/trends", insightsHandler.MarketTrends())

	if s.Health != nil {
		mux.Handle("GET /health", s.Health)
	}

	mux.Handle("GET /metrics", metrics.Handler())

	// metrics.Middleware must wrap the mux directly to see the matched pattern.
	var handler http.Handler = mux
	handler = metrics.Middleware(handler)
	handler = middleware.Logging(handler)

	return handler
}
