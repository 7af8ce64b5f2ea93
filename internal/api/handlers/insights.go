package handlers

import (
	"log/slog"
	"net/http"

	"github.com/aaravmahajanofficial/farm-marketplace/internal/api/middleware"
	service "github.com/aaravmahajanofficial/farm-marketplace/internal/services"
	"github.com/aaravmahajanofficial/farm-marketplace/internal/utils/response"
)

type InsightsHandler struct {
	insightsService service.InsightsService
}

func NewInsightsHandler(insightsService service.InsightsService) *InsightsHandler {
	return &InsightsHandler{insightsService: insightsService}
}

func (h *InsightsHandler) ListOrders() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		orders, err := h.insightsService.Orders(r.Context())
		if err != nil {
			middleware.LoggerFromContext(r.Context()).Error("Failed to fetch orders", slog.Any("error", err))
			response.Error(w, err)
			return
		}

		response.Success(w, http.StatusOK, orders)
	}
}

func (h *InsightsHandler) MarketTrends() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		trends, err := h.insightsService.Trends(r.Context())
		if err != nil {
			middleware.LoggerFromContext(r.Context()).Error("Failed to fetch market trends", slog.Any("error", err))
			response.Error(w, err)
			return
		}

		response.Success(w, http.StatusOK, trends)
	}
}
