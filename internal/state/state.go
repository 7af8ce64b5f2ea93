// Package state holds one visitor's session: who they are, what is in
// their cart and saved set, and the listings they manage as a farmer.
//
// State is a value. It only changes through Reduce, which applies one
// Action and returns the next State. A failed action returns the input
// state and an error, so callers never observe a partial update.
package state

import (
	"maps"
	"slices"
	"time"

	"github.com/aaravmahajanofficial/farm-marketplace/internal/catalog"
	"github.com/aaravmahajanofficial/farm-marketplace/internal/models"
	"github.com/go-playground/validator/v10"
)

type State struct {
	Status      models.SessionStatus
	PendingRole models.Role
	AuthMode    models.AuthMode
	User        *models.User
	Cart        models.Cart
	Saved       models.SavedSet
	Listings    []models.Product
}

// Env is what actions may read besides the state itself.
type Env struct {
	Catalog  catalog.Snapshot
	Validate *validator.Validate
	// DemoProfile fills the profile of a simulated login.
	DemoProfile models.User
	// SeedListings is copied into the listing set when a farmer signs in.
	SeedListings []models.Product
	Now          func() time.Time
	NewID        func() string
}

func New() State {
	return State{
		Status:   models.StatusAnonymous,
		Cart:     models.Cart{},
		Saved:    models.SavedSet{},
		Listings: []models.Product{},
	}
}

func (s State) CartItemCount() int {
	return s.Cart.ItemCount()
}

func (s State) Authenticated() bool {
	return s.Status == models.StatusAuthenticatedFarmer || s.Status == models.StatusAuthenticatedBuyer
}

func (s State) Authenticating() bool {
	return s.Status == models.StatusAuthenticatingFarmer || s.Status == models.StatusAuthenticatingBuyer
}

// Role is the signed-in user's role, or "" when nobody is signed in.
func (s State) Role() models.Role {
	if s.User == nil {
		return ""
	}

	return s.User.UserType
}

// Require fails unless a user with role is signed in.
func (s State) Require(role models.Role) error {
	return requireRole(&s, role)
}

func (s State) View() models.SessionView {
	view := models.SessionView{
		Status:        s.Status,
		PendingRole:   s.PendingRole,
		AuthMode:      s.AuthMode,
		CartItemCount: s.CartItemCount(),
		SavedCount:    len(s.Saved),
		ListingCount:  len(s.Listings),
	}

	if s.User != nil {
		user := *s.User
		view.User = &user
	}

	return view
}

// clone deep-copies the mutable parts so an action can edit freely.
func (s State) clone() State {
	next := s
	next.Cart = maps.Clone(s.Cart)
	next.Saved = maps.Clone(s.Saved)
	next.Listings = slices.Clone(s.Listings)

	if next.Cart == nil {
		next.Cart = models.Cart{}
	}

	if next.Saved == nil {
		next.Saved = models.SavedSet{}
	}

	if next.Listings == nil {
		next.Listings = []models.Product{}
	}

	if s.User != nil {
		user := *s.User
		next.User = &user
	}

	return next
}

func authenticatingStatus(role models.Role) models.SessionStatus {
	if role == models.RoleFarmer {
		return models.StatusAuthenticatingFarmer
	}

	return models.StatusAuthenticatingBuyer
}

func authenticatedStatus(role models.Role) models.SessionStatus {
	if role == models.RoleFarmer {
		return models.StatusAuthenticatedFarmer
	}

	return models.StatusAuthenticatedBuyer
}
