package handlers

import (
	"net/http"

	"github.com/aaravmahajanofficial/farm-marketplace/internal/models"
	service "github.com/aaravmahajanofficial/farm-marketplace/internal/services"
	"github.com/aaravmahajanofficial/farm-marketplace/internal/state"
	"github.com/aaravmahajanofficial/farm-marketplace/internal/utils"
	"github.com/aaravmahajanofficial/farm-marketplace/internal/utils/response"
)

// ListingHandler serves a farmer's own product listings.
type ListingHandler struct {
	sessionService service.SessionService
}

func NewListingHandler(sessionService service.SessionService) *ListingHandler {
	return &ListingHandler{sessionService: sessionService}
}

func (h *ListingHandler) ListListings() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := sessionID(w, r)
		if !ok {
			return
		}

		listings, err := h.sessionService.Listings(r.Context(), id)
		if err != nil {
			response.Error(w, err)
			return
		}

		response.Success(w, http.StatusOK, listings)
	}
}

func (h *ListingHandler) CreateListing() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := sessionID(w, r)
		if !ok {
			return
		}

		var draft models.ListingDraft
		if err := utils.DecodeJSONBody(r, &draft); err != nil {
			response.Error(w, err)
			return
		}

		view, err := h.sessionService.Dispatch(r.Context(), id, state.AddListing{Draft: draft})
		if err != nil {
			response.Error(w, err)
			return
		}

		response.Success(w, http.StatusCreated, view)
	}
}

func (h *ListingHandler) DeleteListing() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := sessionID(w, r)
		if !ok {
			return
		}

		view, err := h.sessionService.Dispatch(r.Context(), id, state.RemoveListing{ProductID: r.PathValue("id")})
		if err != nil {
			response.Error(w, err)
			return
		}

		response.Success(w, http.StatusOK, view)
	}
}

func (h *ListingHandler) Aggregates() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := sessionID(w, r)
		if !ok {
			return
		}

		aggregates, err := h.sessionService.ListingAggregates(r.Context(), id)
		if err != nil {
			response.Error(w, err)
			return
		}

		response.Success(w, http.StatusOK, aggregates)
	}
}
