package catalog_test

import (
	"testing"

	"github.com/aaravmahajanofficial/farm-marketplace/internal/catalog"
	"github.com/aaravmahajanofficial/farm-marketplace/internal/models"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSnapshot(t *testing.T) {
	products := sampleCatalog()
	snapshot := catalog.NewSnapshot(products)

	t.Run("Success - Lookup", func(t *testing.T) {
		// Act
		p, ok := snapshot.Lookup("3")
		_, missing := snapshot.Lookup("99")

		// Assert
		require.True(t, ok)
		assert.Equal(t, "Sweet Mangoes", p.Name)
		assert.False(t, missing)
		assert.True(t, snapshot.Contains("1"))
		assert.False(t, snapshot.Contains(""))
		assert.Equal(t, 6, snapshot.Len())
	})

	t.Run("Success - Isolated From Caller Slice", func(t *testing.T) {
		// Arrange
		input := sampleCatalog()
		s := catalog.NewSnapshot(input)

		// Act
		input[0].Name = "changed"
		out := s.Products()
		out[1].Name = "changed too"

		// Assert
		p, _ := s.Lookup("1")
		assert.Equal(t, "Organic Tomatoes", p.Name)
		p, _ = s.Lookup("2")
		assert.Equal(t, "Fresh Carrots", p.Name)
	})

	t.Run("Success - Saved Skips Dangling Ids", func(t *testing.T) {
		// Arrange
		saved := models.SavedSet{"5": {}, "gone": {}, "1": {}}

		// Act
		result := snapshot.Saved(saved)

		// Assert
		assert.Equal(t, []string{"1", "5"}, ids(result))
	})

	t.Run("Success - Summarize Cart", func(t *testing.T) {
		// Arrange
		cart := models.Cart{"2": 2, "1": 1, "gone": 4}

		// Act
		summary := snapshot.Summarize(cart)

		// Assert
		require.Len(t, summary.Lines, 2)
		assert.Equal(t, "1", summary.Lines[0].Product.ID)
		assert.True(t, decimal.NewFromInt(60).Equal(summary.Lines[0].LineTotal))
		assert.Equal(t, "2", summary.Lines[1].Product.ID)
		assert.True(t, decimal.NewFromInt(90).Equal(summary.Lines[1].LineTotal))
		assert.Equal(t, 3, summary.ItemCount)
		assert.True(t, decimal.NewFromInt(150).Equal(summary.Subtotal))
	})

	t.Run("Success - Empty Cart", func(t *testing.T) {
		// Act
		summary := snapshot.Summarize(nil)

		// Assert
		assert.NotNil(t, summary.Lines)
		assert.Zero(t, summary.ItemCount)
		assert.True(t, summary.Subtotal.IsZero())
	})

	t.Run("Success - Duplicate Ids Resolve To First", func(t *testing.T) {
		// Arrange
		dup := catalog.NewSnapshot(append(sampleCatalog(), product("1", "Second Tomatoes", 1, 1, models.CategoryVegetables, "Kano", "")))

		// Act
		summary := dup.Summarize(models.Cart{"1": 1})
		saved := dup.Saved(models.SavedSet{"1": {}})

		// Assert
		require.Len(t, summary.Lines, 1)
		assert.Equal(t, "Organic Tomatoes", summary.Lines[0].Product.Name)
		require.Len(t, saved, 1)
		assert.Equal(t, "Organic Tomatoes", saved[0].Name)
	})
}

func TestNewListing(t *testing.T) {
	price := decimal.RequireFromString("35.5")
	quantity := 12

	t.Run("Success - Applies Defaults", func(t *testing.T) {
		// Arrange
		draft := models.ListingDraft{Name: "Okra", Category: models.CategoryVegetables, Price: &price, Quantity: &quantity}

		// Act
		p := catalog.NewListing("abc", draft, "Mirabel D")

		// Assert
		assert.Equal(t, "abc", p.ID)
		assert.Equal(t, "Okra", p.Name)
		assert.Equal(t, catalog.DefaultUnit, p.Unit)
		assert.Equal(t, catalog.DefaultListingLocation, p.Location)
		assert.Equal(t, "Mirabel D", p.Farmer)
		assert.True(t, price.Equal(p.Price))
		assert.Equal(t, 12, p.Quantity)
	})

	t.Run("Success - Strips Markup", func(t *testing.T) {
		// Arrange
		draft := models.ListingDraft{
			Name:        "<b>Yams</b>",
			Price:       &price,
			Quantity:    &quantity,
			Unit:        "tuber",
			Description: `<script>alert("x")</script>Fresh`,
			Location:    "Jos",
		}

		// Act
		p := catalog.NewListing("id", draft, "")

		// Assert
		assert.Equal(t, "Yams", p.Name)
		assert.Equal(t, "Fresh", p.Description)
		assert.Equal(t, "tuber", p.Unit)
		assert.Equal(t, "Jos", p.Location)
	})

	t.Run("Success - Missing Category Defaults To Vegetables", func(t *testing.T) {
		// Arrange
		draft := models.ListingDraft{Name: "Okra", Price: &price, Quantity: &quantity}

		// Act
		p := catalog.NewListing("abc", draft, "Mirabel D")

		// Assert
		assert.Equal(t, models.CategoryVegetables, p.Category)
		assert.True(t, p.Category.Valid())
	})
}

func TestRemoveListing(t *testing.T) {
	t.Run("Success - Removes Only Target", func(t *testing.T) {
		// Arrange
		products := sampleCatalog()

		// Act
		result, removed := catalog.RemoveListing(products, "3")

		// Assert
		assert.True(t, removed)
		assert.Equal(t, []string{"1", "2", "4", "5", "6"}, ids(result))
		assert.Equal(t, sampleCatalog(), products)
	})

	t.Run("Failure - Unknown Id", func(t *testing.T) {
		// Arrange
		products := sampleCatalog()

		// Act
		result, removed := catalog.RemoveListing(products, "nope")

		// Assert
		assert.False(t, removed)
		assert.Equal(t, products, result)
	})
}
