// Package validation wraps validator/v10 so that form errors come back
// as a field → message map keyed by the JSON field name.
package validation

import (
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
)

// messages overrides the generic message for a field and tag pair.
var messages = map[string]string{
	"name.required":            "Full name is required",
	"email.required":           "Email is required",
	"phone.required":           "Phone number is required",
	"password.required":        "Password is required",
	"password.min":             "Password must be at least 6 characters",
	"confirmPassword.required": "Please confirm your password",
	"confirmPassword.eqfield":  "Passwords do not match",
	"location.required":        "Location is required",
	"agreeToTerms.required":    "Please accept the terms and conditions",
	"farmName.required":        "Farm name is required",
	"productTypes.min":         "Select at least one product type",
	"interestedProducts.min":   "Select at least one product of interest",
	"price.required":           "Price is required",
	"price.gte":                "Price cannot be negative",
	"quantity.required":        "Quantity is required",
	"quantity.gte":             "Quantity cannot be negative",
	"productId.required":       "Product id is required",
}

func New() *validator.Validate {
	validate := validator.New(validator.WithRequiredStructEnabled())

	validate.RegisterTagNameFunc(func(field reflect.StructField) string {
		name := strings.SplitN(field.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}

		if name == "" {
			return field.Name
		}

		return name
	})

	// Numeric tags (gte, lte) on money fields compare the float value.
	validate.RegisterCustomTypeFunc(func(v reflect.Value) any {
		if d, ok := v.Interface().(decimal.Decimal); ok {
			f, _ := d.Float64()
			return f
		}

		return nil
	}, decimal.Decimal{})

	return validate
}

// Fields validates data and returns the failures keyed by field. It
// returns nil when data is valid.
func Fields(validate *validator.Validate, data any) map[string]string {
	err := validate.Struct(data)
	if err == nil {
		return nil
	}

	validationErrs, ok := err.(validator.ValidationErrors)
	if !ok {
		return map[string]string{"_": err.Error()}
	}

	fields := make(map[string]string, len(validationErrs))

	for _, fieldErr := range validationErrs {
		if _, seen := fields[fieldErr.Field()]; seen {
			continue
		}

		fields[fieldErr.Field()] = Message(fieldErr)
	}

	return fields
}

func Message(err validator.FieldError) string {
	if message, ok := messages[err.Field()+"."+err.Tag()]; ok {
		return message
	}

	switch err.Tag() {
	case "required":
		return fmt.Sprintf("Field %s is required", err.Field())
	case "min":
		return fmt.Sprintf("Field %s must be at least %s", err.Field(), err.Param())
	case "max":
		return fmt.Sprintf("Field %s must be at most %s characters", err.Field(), err.Param())
	case "gte":
		return fmt.Sprintf("Field %s must be greater than or equal to %s", err.Field(), err.Param())
	case "oneof":
		return fmt.Sprintf("Field %s must be one of: %s", err.Field(), err.Param())
	case "eqfield":
		return fmt.Sprintf("Field %s must match %s", err.Field(), err.Param())
	default:
		return fmt.Sprintf("Field %s is invalid: %s=%s", err.Field(), err.Tag(), err.Param())
	}
}
