package models

import "github.com/google/uuid"

type Role string

const (
	RoleFarmer Role = "farmer"
	RoleBuyer  Role = "buyer"
)

func (r Role) Valid() bool {
	return r == RoleFarmer || r == RoleBuyer
}

// AuthMode is the form a visitor picked on the landing page.
type AuthMode string

const (
	AuthModeLogin  AuthMode = "login"
	AuthModeSignup AuthMode = "signup"
)

func (m AuthMode) Valid() bool {
	return m == AuthModeLogin || m == AuthModeSignup
}

type SessionStatus string

const (
	StatusAnonymous            SessionStatus = "anonymous"
	StatusAuthenticatingFarmer SessionStatus = "authenticating_farmer"
	StatusAuthenticatingBuyer  SessionStatus = "authenticating_buyer"
	StatusAuthenticatedFarmer  SessionStatus = "authenticated_farmer"
	StatusAuthenticatedBuyer   SessionStatus = "authenticated_buyer"
)

type User struct {
	Email    string `json:"email"`
	UserType Role   `json:"userType"`
	Name     string `json:"name,omitempty"`
	Phone    string `json:"phone,omitempty"`
	Location string `json:"location,omitempty"`
	JoinDate string `json:"joinDate,omitempty"`
}

// ProfilePatch carries a partial profile; nil fields keep their value.
type ProfilePatch struct {
	Name     *string `json:"name,omitempty" validate:"omitempty,max=200"`
	Email    *string `json:"email,omitempty" validate:"omitempty,max=200"`
	Phone    *string `json:"phone,omitempty" validate:"omitempty,max=50"`
	Location *string `json:"location,omitempty" validate:"omitempty,max=200"`
	JoinDate *string `json:"joinDate,omitempty" validate:"omitempty,max=50"`
}

type Credentials struct {
	Email    string `json:"email" validate:"required"`
	Password string `json:"password" validate:"required"`
}

type LoginRequest struct {
	Role Role `json:"role,omitempty"`
	Credentials
}

// SignupBase holds the fields every signup form requires.
type SignupBase struct {
	Name            string `json:"name" validate:"required"`
	Email           string `json:"email" validate:"required"`
	Phone           string `json:"phone" validate:"required"`
	Password        string `json:"password" validate:"required,min=6"`
	ConfirmPassword string `json:"confirmPassword" validate:"eqfield=Password,required"`
	Location        string `json:"location" validate:"required"`
	AgreeToTerms    bool   `json:"agreeToTerms" validate:"required"`
}

// SignupPayload is implemented by FarmerSignup and BuyerSignup.
type SignupPayload interface {
	Role() Role
	Common() SignupBase
}

type FarmerSignup struct {
	SignupBase
	FarmName     string   `json:"farmName" validate:"required"`
	ProductTypes []string `json:"productTypes" validate:"min=1"`
	FarmSize     string   `json:"farmSize,omitempty"`
}

func (FarmerSignup) Role() Role { return RoleFarmer }

func (s FarmerSignup) Common() SignupBase { return s.SignupBase }

type BuyerSignup struct {
	SignupBase
	InterestedProducts []string `json:"interestedProducts" validate:"min=1"`
	BusinessType       string   `json:"businessType,omitempty"`
}

func (BuyerSignup) Role() Role { return RoleBuyer }

func (s BuyerSignup) Common() SignupBase { return s.SignupBase }

type SelectUserTypeRequest struct {
	Role   Role     `json:"role" validate:"required,oneof=farmer buyer"`
	Action AuthMode `json:"action" validate:"required,oneof=login signup"`
}

type SwitchModeRequest struct {
	Action AuthMode `json:"action" validate:"required,oneof=login signup"`
}

type SessionView struct {
	ID            uuid.UUID     `json:"id"`
	Status        SessionStatus `json:"status"`
	PendingRole   Role          `json:"pendingRole,omitempty"`
	AuthMode      AuthMode      `json:"authMode,omitempty"`
	User          *User         `json:"user"`
	CartItemCount int           `json:"cartItemCount"`
	SavedCount    int           `json:"savedCount"`
	ListingCount  int           `json:"listingCount"`
}
