// Package customerdto - request bodies for the customer domain.
package customerdto

// SignupInput is the body of POST /customer/signup.
type SignupInput struct {
	Name         string `json:"Name" validate:"required,min=2,max=50"`
	Password     string `json:"Password" validate:"required,min=6,max=20"`
	MobileNumber string `json:"MobileNumber" validate:"required,mobile_number"`
	Gender       string `json:"Gender" validate:"required,oneof=Male Female Other"`
	Email        string `json:"Email" validate:"required,email"`
	Address      string `json:"Address" validate:"omitempty,max=200"`
}

// LoginInput is shared by customer login and admin login.
type LoginInput struct {
	Email    string `json:"Email" validate:"required,email"`
	Password string `json:"Password" validate:"required,max=20"`
}

// CustomerUpdateInput carries the partial-update fields for a customer
// record. Nil fields are left untouched.
type CustomerUpdateInput struct {
	Name             *string `json:"Name,omitempty"`
	MobileNumber     *string `json:"MobileNumber,omitempty" validate:"omitempty,mobile_number"`
	Gender           *string `json:"Gender,omitempty" validate:"omitempty,oneof=Male Female Other"`
	Email            *string `json:"Email,omitempty" validate:"omitempty,email"`
	Address          *string `json:"Address,omitempty" validate:"omitempty,max=200"`
	IsProfileUpdated *bool   `json:"isProfileUpdated,omitempty"`
	IsActive         *bool   `json:"isActive,omitempty"`
}
