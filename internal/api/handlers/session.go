package handlers

import (
	"log/slog"
	"net/http"

	"github.com/aaravmahajanofficial/farm-marketplace/internal/api/middleware"
	"github.com/aaravmahajanofficial/farm-marketplace/internal/models"
	service "github.com/aaravmahajanofficial/farm-marketplace/internal/services"
	"github.com/aaravmahajanofficial/farm-marketplace/internal/state"
	"github.com/aaravmahajanofficial/farm-marketplace/internal/utils"
	"github.com/aaravmahajanofficial/farm-marketplace/internal/utils/response"
	"github.com/go-playground/validator/v10"
)

type SessionHandler struct {
	sessionService service.SessionService
	validator      *validator.Validate
}

func NewSessionHandler(sessionService service.SessionService, validate *validator.Validate) *SessionHandler {
	return &SessionHandler{sessionService: sessionService, validator: validate}
}

// dispatch applies action to the request's session and writes the
// resulting view.
func (h *SessionHandler) dispatch(w http.ResponseWriter, r *http.Request, action state.Action, status int) {
	id, ok := sessionID(w, r)
	if !ok {
		return
	}

	view, err := h.sessionService.Dispatch(r.Context(), id, action)
	if err != nil {
		response.Error(w, err)
		return
	}

	response.Success(w, status, view)
}

func (h *SessionHandler) StartSession() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		view, err := h.sessionService.Start(r.Context())
		if err != nil {
			middleware.LoggerFromContext(r.Context()).Error("Failed to start session", slog.Any("error", err))
			response.Error(w, err)
			return
		}

		w.Header().Set(middleware.SessionHeader, view.ID.String())
		response.Success(w, http.StatusCreated, view)
	}
}

func (h *SessionHandler) GetSession() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := sessionID(w, r)
		if !ok {
			return
		}

		view, err := h.sessionService.View(r.Context(), id)
		if err != nil {
			response.Error(w, err)
			return
		}

		response.Success(w, http.StatusOK, view)
	}
}

func (h *SessionHandler) SelectRole() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req models.SelectUserTypeRequest
		if !utils.ParseAndValidate(r, w, &req, h.validator) {
			return
		}

		h.dispatch(w, r, state.SelectUserType{Role: req.Role, Mode: req.Action}, http.StatusOK)
	}
}

func (h *SessionHandler) SwitchMode() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req models.SwitchModeRequest
		if !utils.ParseAndValidate(r, w, &req, h.validator) {
			return
		}

		h.dispatch(w, r, state.SwitchAuthMode{Mode: req.Action}, http.StatusOK)
	}
}

// Login leaves credential checks to the session so that field errors come
// back together with the rest of the form.
func (h *SessionHandler) Login() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req models.LoginRequest
		if err := utils.DecodeJSONBody(r, &req); err != nil {
			response.Error(w, err)
			return
		}

		h.dispatch(w, r, state.Login{Role: req.Role, Credentials: req.Credentials}, http.StatusOK)
	}
}

func (h *SessionHandler) SignupFarmer() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req models.FarmerSignup
		if err := utils.DecodeJSONBody(r, &req); err != nil {
			response.Error(w, err)
			return
		}

		h.dispatch(w, r, state.Signup{Payload: req}, http.StatusCreated)
	}
}

func (h *SessionHandler) SignupBuyer() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req models.BuyerSignup
		if err := utils.DecodeJSONBody(r, &req); err != nil {
			response.Error(w, err)
			return
		}

		h.dispatch(w, r, state.Signup{Payload: req}, http.StatusCreated)
	}
}

func (h *SessionHandler) Cancel() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		h.dispatch(w, r, state.Cancel{}, http.StatusOK)
	}
}

func (h *SessionHandler) Logout() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		h.dispatch(w, r, state.Logout{}, http.StatusOK)
	}
}

func (h *SessionHandler) UpdateProfile() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req models.ProfilePatch
		if err := utils.DecodeJSONBody(r, &req); err != nil {
			response.Error(w, err)
			return
		}

		h.dispatch(w, r, state.UpdateProfile{Patch: req}, http.StatusOK)
	}
}
