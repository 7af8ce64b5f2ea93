package handlers

import (
	"net/http"

	"github.com/aaravmahajanofficial/farm-marketplace/internal/api/middleware"
	"github.com/aaravmahajanofficial/farm-marketplace/internal/errors"
	"github.com/aaravmahajanofficial/farm-marketplace/internal/utils/response"
	"github.com/google/uuid"
)

// sessionID reads the id set by middleware.RequireSession, writing an
// error response when the route was mounted without it.
func sessionID(w http.ResponseWriter, r *http.Request) (uuid.UUID, bool) {
	id, ok := middleware.SessionIDFromContext(r.Context())
	if !ok {
		response.Error(w, errors.UnauthorizedError("Session header is required"))
		return uuid.Nil, false
	}

	return id, true
}
