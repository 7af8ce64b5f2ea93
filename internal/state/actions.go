package state

import (
	"strings"

	"github.com/aaravmahajanofficial/farm-marketplace/internal/catalog"
	"github.com/aaravmahajanofficial/farm-marketplace/internal/errors"
	"github.com/aaravmahajanofficial/farm-marketplace/internal/models"
	"github.com/aaravmahajanofficial/farm-marketplace/internal/validation"
	"github.com/go-playground/validator/v10"
)

const joinDateLayout = "January 2006"

var defaultValidate = validation.New()

func (env Env) validator() *validator.Validate {
	if env.Validate != nil {
		return env.Validate
	}

	return defaultValidate
}

func (env Env) check(data any) error {
	if fields := validation.Fields(env.validator(), data); fields != nil {
		return errors.ValidationError("Invalid input").WithFields(fields)
	}

	return nil
}

func requireRole(s *State, role models.Role) error {
	if !s.Authenticated() {
		return errors.UnauthorizedError("Sign in to continue")
	}

	if s.Role() != role {
		return errors.ForbiddenError("Only " + string(role) + "s can do this")
	}

	return nil
}

// SelectUserType starts authentication for a role from the landing page.
type SelectUserType struct {
	Role models.Role
	Mode models.AuthMode
}

func (SelectUserType) Name() string { return "select_user_type" }

func (a SelectUserType) apply(s *State, env Env) error {
	if err := env.check(models.SelectUserTypeRequest{Role: a.Role, Action: a.Mode}); err != nil {
		return err
	}

	if s.Authenticated() {
		return errors.InvalidTransitionError("Already signed in")
	}

	s.Status = authenticatingStatus(a.Role)
	s.PendingRole = a.Role
	s.AuthMode = a.Mode

	return nil
}

// SwitchAuthMode flips between the login and signup forms.
type SwitchAuthMode struct {
	Mode models.AuthMode
}

func (SwitchAuthMode) Name() string { return "switch_auth_mode" }

func (a SwitchAuthMode) apply(s *State, env Env) error {
	if err := env.check(models.SwitchModeRequest{Action: a.Mode}); err != nil {
		return err
	}

	if !s.Authenticating() {
		return errors.InvalidTransitionError("No sign-in in progress")
	}

	s.AuthMode = a.Mode

	return nil
}

type Login struct {
	// Role defaults to the role picked on the landing page.
	Role        models.Role
	Credentials models.Credentials
}

func (Login) Name() string { return "login" }

func (a Login) apply(s *State, env Env) error {
	if a.Role == "" {
		a.Role = s.PendingRole
	}

	if err := checkPending(s, a.Role); err != nil {
		return err
	}

	if err := env.check(a.Credentials); err != nil {
		return err
	}

	s.signIn(env, models.User{
		Email:    strings.TrimSpace(a.Credentials.Email),
		UserType: a.Role,
		Name:     env.DemoProfile.Name,
		Phone:    env.DemoProfile.Phone,
		Location: env.DemoProfile.Location,
		JoinDate: env.DemoProfile.JoinDate,
	})

	return nil
}

type Signup struct {
	Payload models.SignupPayload
}

func (Signup) Name() string { return "signup" }

func (a Signup) apply(s *State, env Env) error {
	if a.Payload == nil {
		return errors.BadRequestError("Missing signup form")
	}

	if err := checkPending(s, a.Payload.Role()); err != nil {
		return err
	}

	if err := env.check(a.Payload); err != nil {
		return err
	}

	common := a.Payload.Common()
	joined := ""

	if env.Now != nil {
		joined = env.Now().Format(joinDateLayout)
	}

	s.signIn(env, models.User{
		Email:    strings.TrimSpace(common.Email),
		UserType: a.Payload.Role(),
		Name:     strings.TrimSpace(common.Name),
		Phone:    strings.TrimSpace(common.Phone),
		Location: strings.TrimSpace(common.Location),
		JoinDate: joined,
	})

	return nil
}

func checkPending(s *State, role models.Role) error {
	if !s.Authenticating() {
		return errors.InvalidTransitionError("Choose farmer or buyer first")
	}

	if role != s.PendingRole {
		return errors.InvalidTransitionError("Signing in as " + string(s.PendingRole) + ", not " + string(role))
	}

	return nil
}

func (s *State) signIn(env Env, user models.User) {
	s.Status = authenticatedStatus(user.UserType)
	s.PendingRole = ""
	s.AuthMode = ""
	s.User = &user

	if user.UserType == models.RoleFarmer {
		s.Listings = append([]models.Product{}, env.SeedListings...)
	}
}

// Cancel leaves the sign-in form for the landing page.
type Cancel struct{}

func (Cancel) Name() string { return "cancel" }

func (Cancel) apply(s *State, _ Env) error {
	if !s.Authenticating() {
		return errors.InvalidTransitionError("No sign-in in progress")
	}

	*s = New()

	return nil
}

// Logout ends the session and drops the cart, saved set and listings.
type Logout struct{}

func (Logout) Name() string { return "logout" }

func (Logout) apply(s *State, _ Env) error {
	if !s.Authenticated() {
		return errors.InvalidTransitionError("Not signed in")
	}

	*s = New()

	return nil
}

type AddToCart struct {
	ProductID string
}

func (AddToCart) Name() string { return "add_to_cart" }

func (a AddToCart) apply(s *State, env Env) error {
	if err := requireRole(s, models.RoleBuyer); err != nil {
		return err
	}

	if !env.Catalog.Contains(a.ProductID) {
		return errors.UnknownProductError(a.ProductID)
	}

	s.Cart[a.ProductID]++

	return nil
}

// ToggleSaved adds the product to the saved set, or removes it if present.
type ToggleSaved struct {
	ProductID string
}

func (ToggleSaved) Name() string { return "toggle_saved" }

func (a ToggleSaved) apply(s *State, env Env) error {
	if err := requireRole(s, models.RoleBuyer); err != nil {
		return err
	}

	if err := env.check(models.AddToCartRequest{ProductID: a.ProductID}); err != nil {
		return err
	}

	if s.Saved.Has(a.ProductID) {
		delete(s.Saved, a.ProductID)
	} else {
		s.Saved[a.ProductID] = struct{}{}
	}

	return nil
}

type AddListing struct {
	Draft models.ListingDraft
}

func (AddListing) Name() string { return "add_listing" }

func (a AddListing) apply(s *State, env Env) error {
	if err := requireRole(s, models.RoleFarmer); err != nil {
		return err
	}

	if err := env.check(a.Draft); err != nil {
		return err
	}

	if env.NewID == nil {
		return errors.InternalError("Listing ids are not configured")
	}

	s.Listings = append(s.Listings, catalog.NewListing(env.NewID(), a.Draft, s.User.Name))

	return nil
}

// RemoveListing deletes one of the farmer's own listings. Carts and saved
// sets that reference it are left alone.
type RemoveListing struct {
	ProductID string
}

func (RemoveListing) Name() string { return "remove_listing" }

func (a RemoveListing) apply(s *State, _ Env) error {
	if err := requireRole(s, models.RoleFarmer); err != nil {
		return err
	}

	listings, removed := catalog.RemoveListing(s.Listings, a.ProductID)
	if !removed {
		return errors.NotFoundError("Listing not found").WithDetail("product id '" + a.ProductID + "'")
	}

	s.Listings = listings

	return nil
}

// UpdateProfile overwrites the profile fields present in the patch.
type UpdateProfile struct {
	Patch models.ProfilePatch
}

func (UpdateProfile) Name() string { return "update_profile" }

func (a UpdateProfile) apply(s *State, env Env) error {
	if !s.Authenticated() {
		return errors.UnauthorizedError("Sign in to continue")
	}

	if err := env.check(a.Patch); err != nil {
		return err
	}

	overwrite(&s.User.Name, a.Patch.Name)
	overwrite(&s.User.Email, a.Patch.Email)
	overwrite(&s.User.Phone, a.Patch.Phone)
	overwrite(&s.User.Location, a.Patch.Location)
	overwrite(&s.User.JoinDate, a.Patch.JoinDate)

	return nil
}

func overwrite(field *string, value *string) {
	if value != nil {
		*field = *value
	}
}
