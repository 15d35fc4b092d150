package validator

import (
	"fmt"
	"strings"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	usecasecontract "github.com/vibra-app/vibra/internal/usecase/contract"
)

// AppValidator implements the usecase.Validator interface.
type AppValidator struct {
	validate *validator.Validate
}

// NewValidator creates a new validator that implements the usecase.Validator interface.
func NewValidator() usecasecontract.IValidator {
	v := validator.New()
	return &AppValidator{validate: v}
}

// ValidateEmail checks if the email format is valid.
func (av *AppValidator) ValidateEmail(email string) error {
	return av.validate.Var(email, "required,email")
}

// ValidateUsername checks the username shape used across the platform.
func (av *AppValidator) ValidateUsername(username string) error {
	if err := av.validate.Var(username, "required,min=3,max=30"); err != nil {
		return fmt.Errorf("username must be 3-30 characters")
	}
	if strings.ContainsAny(username, " \t\n") {
		return fmt.Errorf("username must not contain whitespace")
	}
	return nil
}

// ValidateWalletAddress rejects empty or whitespace-only addresses. The
// platform never verifies a signature for an address, only its presence.
func (av *AppValidator) ValidateWalletAddress(address string) error {
	if strings.TrimSpace(address) == "" {
		return fmt.Errorf("wallet address is required")
	}
	return nil
}

// RegisterCustomValidators registers custom validation functions with the Gin validator.
func RegisterCustomValidators() {
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		v.RegisterValidation("taglist", tagListFL)
		v.RegisterValidation("videofile", videoFileFL)
	}
}

// tagListFL accepts a comma-separated list of non-empty tags.
func tagListFL(fl validator.FieldLevel) bool {
	raw := fl.Field().String()
	if raw == "" {
		return true
	}
	for _, tag := range strings.Split(raw, ",") {
		if strings.TrimSpace(tag) == "" {
			return false
		}
	}
	return true
}

// videoFileFL accepts filenames with a known video extension.
func videoFileFL(fl validator.FieldLevel) bool {
	name := strings.ToLower(fl.Field().String())
	for _, ext := range []string{".mp4", ".mov", ".avi", ".webm"} {
		if strings.HasSuffix(name, ext) {
			return true
		}
	}
	return false
}
