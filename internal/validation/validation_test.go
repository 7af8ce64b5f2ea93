package validation_test

import (
	"testing"

	"github.com/aaravmahajanofficial/farm-marketplace/internal/models"
	"github.com/aaravmahajanofficial/farm-marketplace/internal/validation"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func validBase() models.SignupBase {
	return models.SignupBase{
		Name:            "Ada Obi",
		Email:           "ada@example.com",
		Phone:           "+234 800 000 0000",
		Password:        "secret1",
		ConfirmPassword: "secret1",
		Location:        "Lagos",
		AgreeToTerms:    true,
	}
}

func TestFields(t *testing.T) {
	validate := validation.New()

	t.Run("Success - Valid Farmer Signup", func(t *testing.T) {
		// Arrange
		payload := models.FarmerSignup{SignupBase: validBase(), FarmName: "Ada Farms", ProductTypes: []string{"Vegetables"}}

		// Act
		fields := validation.Fields(validate, payload)

		// Assert
		assert.Nil(t, fields)
	})

	t.Run("Failure - Short Password", func(t *testing.T) {
		// Arrange
		base := validBase()
		base.Password = "abc12"
		base.ConfirmPassword = "abc12"
		payload := models.BuyerSignup{SignupBase: base, InterestedProducts: []string{"Fruits"}}

		// Act
		fields := validation.Fields(validate, payload)

		// Assert
		assert.Equal(t, map[string]string{"password": "Password must be at least 6 characters"}, fields)
	})

	t.Run("Failure - Farmer Without Product Types", func(t *testing.T) {
		// Arrange
		payload := models.FarmerSignup{SignupBase: validBase(), FarmName: "Ada Farms"}

		// Act
		fields := validation.Fields(validate, payload)

		// Assert
		assert.Equal(t, map[string]string{"productTypes": "Select at least one product type"}, fields)
	})

	t.Run("Failure - Empty Signup", func(t *testing.T) {
		// Act
		fields := validation.Fields(validate, models.BuyerSignup{})

		// Assert
		assert.Equal(t, "Full name is required", fields["name"])
		assert.Equal(t, "Email is required", fields["email"])
		assert.Equal(t, "Phone number is required", fields["phone"])
		assert.Equal(t, "Password is required", fields["password"])
		assert.Equal(t, "Location is required", fields["location"])
		assert.Equal(t, "Please accept the terms and conditions", fields["agreeToTerms"])
		assert.Equal(t, "Select at least one product of interest", fields["interestedProducts"])
		assert.Contains(t, fields, "confirmPassword")
	})

	t.Run("Failure - Passwords Differ", func(t *testing.T) {
		// Arrange
		base := validBase()
		base.ConfirmPassword = "secret2"
		payload := models.BuyerSignup{SignupBase: base, InterestedProducts: []string{"Fruits"}}

		// Act
		fields := validation.Fields(validate, payload)

		// Assert
		assert.Equal(t, map[string]string{"confirmPassword": "Passwords do not match"}, fields)
	})

	t.Run("Failure - Login Missing Fields", func(t *testing.T) {
		// Act
		fields := validation.Fields(validate, models.Credentials{})

		// Assert
		assert.Equal(t, map[string]string{
			"email":    "Email is required",
			"password": "Password is required",
		}, fields)
	})

	t.Run("Success - Login Has No Length Rule", func(t *testing.T) {
		// Act
		fields := validation.Fields(validate, models.Credentials{Email: "a@b.c", Password: "x"})

		// Assert
		assert.Nil(t, fields)
	})

	t.Run("Failure - Negative Listing Price", func(t *testing.T) {
		// Arrange
		price := decimal.NewFromInt(-1)
		quantity := 0
		draft := models.ListingDraft{Name: "Okra", Price: &price, Quantity: &quantity}

		// Act
		fields := validation.Fields(validate, draft)

		// Assert
		assert.Equal(t, map[string]string{"price": "Price cannot be negative"}, fields)
	})

	t.Run("Failure - Listing Missing Price And Quantity", func(t *testing.T) {
		// Act
		fields := validation.Fields(validate, models.ListingDraft{Name: "Okra", Category: "Meat"})

		// Assert
		assert.Equal(t, "Price is required", fields["price"])
		assert.Equal(t, "Quantity is required", fields["quantity"])
		assert.Equal(t, "Field category must be one of: Vegetables Fruits Herbs Grains Dairy", fields["category"])
	})
}
