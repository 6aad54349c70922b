package global

import (
	"regexp"

	"github.com/go-playground/validator/v10"
)

var (
	mobileNumberRegex = regexp.MustCompile(`^[0-9]{10,15}$`)
	objectIDRegex     = regexp.MustCompile(`^[0-9a-fA-F]{24}$`)
)

// InitValidator creates the shared validator and registers the custom
// rules used across request DTOs.
func InitValidator() {
	Validate = validator.New()

	// mobile_number: 10 to 15 digits, no separators
	_ = Validate.RegisterValidation("mobile_number", func(fl validator.FieldLevel) bool {
		return mobileNumberRegex.MatchString(fl.Field().String())
	})

	// object_id: 24 character hex string
	_ = Validate.RegisterValidation("object_id", func(fl validator.FieldLevel) bool {
		return objectIDRegex.MatchString(fl.Field().String())
	})
}
