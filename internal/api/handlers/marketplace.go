package handlers

import (
	"log/slog"
	"net/http"

	"github.com/aaravmahajanofficial/farm-marketplace/internal/api/middleware"
	"github.com/aaravmahajanofficial/farm-marketplace/internal/models"
	service "github.com/aaravmahajanofficial/farm-marketplace/internal/services"
	"github.com/aaravmahajanofficial/farm-marketplace/internal/utils/response"
)

type MarketplaceHandler struct {
	marketplaceService service.MarketplaceService
}

func NewMarketplaceHandler(marketplaceService service.MarketplaceService) *MarketplaceHandler {
	return &MarketplaceHandler{marketplaceService: marketplaceService}
}

// for eg: GET /products?search=carrot&category=Vegetables&price=low&location=Lagos
func (h *MarketplaceHandler) SearchProducts() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		query := r.URL.Query()

		criteria := models.FilterCriteria{
			SearchTerm: query.Get("search"),
			Category:   query.Get("category"),
			PriceBand:  models.PriceBand(query.Get("price")),
			Location:   query.Get("location"),
		}

		page, err := h.marketplaceService.Search(r.Context(), criteria)
		if err != nil {
			middleware.LoggerFromContext(r.Context()).Error("Failed to search products", slog.Any("error", err))
			response.Error(w, err)
			return
		}

		response.Success(w, http.StatusOK, page)
	}
}

func (h *MarketplaceHandler) Aggregates() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		aggregates, err := h.marketplaceService.Aggregates(r.Context())
		if err != nil {
			middleware.LoggerFromContext(r.Context()).Error("Failed to compute aggregates", slog.Any("error", err))
			response.Error(w, err)
			return
		}

		response.Success(w, http.StatusOK, aggregates)
	}
}

func (h *MarketplaceHandler) FilterOptions() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		options, err := h.marketplaceService.FilterOptions(r.Context())
		if err != nil {
			middleware.LoggerFromContext(r.Context()).Error("Failed to list filter options", slog.Any("error", err))
			response.Error(w, err)
			return
		}

		response.Success(w, http.StatusOK, options)
	}
}
