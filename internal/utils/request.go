package utils

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"

	"github.com/aaravmahajanofficial/farm-marketplace/internal/api/middleware"
	"github.com/aaravmahajanofficial/farm-marketplace/internal/errors"
	"github.com/aaravmahajanofficial/farm-marketplace/internal/utils/response"
	"github.com/aaravmahajanofficial/farm-marketplace/internal/validation"
	"github.com/go-playground/validator/v10"
)

const maxBodyBytes = 1 << 20

func DecodeJSONBody(r *http.Request, dest any) error {
	logger := middleware.LoggerFromContext(r.Context())

	defer r.Body.Close()

	body, err := io.ReadAll(io.LimitReader(r.Body, maxBodyBytes))
	if err != nil {
		logger.Error("Failed to read request body", slog.String("error", err.Error()))
		return errors.BadRequestError("Failed to read request body").WithError(err)
	}

	if len(body) == 0 {
		logger.Warn("Empty request body")
		return errors.BadRequestError("Request body cannot be empty")
	}

	if err := json.Unmarshal(body, dest); err != nil {
		logger.Warn("Failed to parse request JSON", slog.String("error", err.Error()))
		return errors.BadRequestError("Invalid JSON format").WithError(err)
	}

	return nil
}

// ValidateStruct returns a validation AppError carrying one message per
// failing field.
func ValidateStruct(validate *validator.Validate, data any) error {
	if fields := validation.Fields(validate, data); fields != nil {
		return errors.ValidationError("Invalid input").WithFields(fields)
	}

	return nil
}

// ParseAndValidate decodes and validates the body into dest, writing the
// error response itself when either step fails.
func ParseAndValidate(r *http.Request, w http.ResponseWriter, dest any, validate *validator.Validate) bool {
	if err := DecodeJSONBody(r, dest); err != nil {
		response.Error(w, err)
		return false
	}

	if err := ValidateStruct(validate, dest); err != nil {
		middleware.LoggerFromContext(r.Context()).Warn("Validation failed", slog.Any("fields", err.(*errors.AppError).Fields))
		response.Error(w, err)
		return false
	}

	return true
}
