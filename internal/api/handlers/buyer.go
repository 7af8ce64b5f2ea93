package handlers

import (
	"net/http"

	"github.com/aaravmahajanofficial/farm-marketplace/internal/models"
	service "github.com/aaravmahajanofficial/farm-marketplace/internal/services"
	"github.com/aaravmahajanofficial/farm-marketplace/internal/state"
	"github.com/aaravmahajanofficial/farm-marketplace/internal/utils"
	"github.com/aaravmahajanofficial/farm-marketplace/internal/utils/response"
	"github.com/go-playground/validator/v10"
)

// BuyerHandler serves the buyer's cart and saved products.
type BuyerHandler struct {
	sessionService service.SessionService
	validator      *validator.Validate
}

func NewBuyerHandler(sessionService service.SessionService, validate *validator.Validate) *BuyerHandler {
	return &BuyerHandler{sessionService: sessionService, validator: validate}
}

func (h *BuyerHandler) GetCart() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := sessionID(w, r)
		if !ok {
			return
		}

		summary, err := h.sessionService.Cart(r.Context(), id)
		if err != nil {
			response.Error(w, err)
			return
		}

		response.Success(w, http.StatusOK, summary)
	}
}

func (h *BuyerHandler) AddItem() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := sessionID(w, r)
		if !ok {
			return
		}

		var req models.AddToCartRequest
		if !utils.ParseAndValidate(r, w, &req, h.validator) {
			return
		}

		view, err := h.sessionService.Dispatch(r.Context(), id, state.AddToCart{ProductID: req.ProductID})
		if err != nil {
			response.Error(w, err)
			return
		}

		response.Success(w, http.StatusOK, view)
	}
}

func (h *BuyerHandler) GetSaved() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := sessionID(w, r)
		if !ok {
			return
		}

		products, err := h.sessionService.Saved(r.Context(), id)
		if err != nil {
			response.Error(w, err)
			return
		}

		response.Success(w, http.StatusOK, products)
	}
}

func (h *BuyerHandler) ToggleSaved() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := sessionID(w, r)
		if !ok {
			return
		}

		view, err := h.sessionService.Dispatch(r.Context(), id, state.ToggleSaved{ProductID: r.PathValue("id")})
		if err != nil {
			response.Error(w, err)
			return
		}

		response.Success(w, http.StatusOK, view)
	}
}
