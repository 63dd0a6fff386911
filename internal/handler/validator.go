package handler

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/mossvale/WildkeeperBot_Go/internal/domain"
)

// Validator wraps the validator instance
type Validator struct {
	validate *validator.Validate
}

// Global validator instance
var validate *Validator

// InitValidator initializes the global validator
func InitValidator() {
	v := validator.New()

	_ = v.RegisterValidation("resolvemode", validateResolveMode)
	_ = v.RegisterValidation("actioncontext", validateActionContext)

	validate = &Validator{validate: v}
}

// GetValidator returns the global validator instance
func GetValidator() *Validator {
	if validate == nil {
		InitValidator()
	}
	return validate
}

// ValidateStruct validates a struct using tags
func (v *Validator) ValidateStruct(s interface{}) error {
	return v.validate.Struct(s)
}

func validateResolveMode(fl validator.FieldLevel) bool {
	switch domain.ResolveMode(fl.Field().String()) {
	case domain.ModeRegular, domain.ModeRaid:
		return true
	}
	return false
}

func validateActionContext(fl validator.FieldLevel) bool {
	switch domain.ActionContext(fl.Field().String()) {
	case domain.ContextCombat, domain.ContextGather, domain.ContextLoot, domain.ContextTravel:
		return true
	}
	return false
}

// FormatValidationError formats validation errors into a user-friendly map
// without leaking internal struct names.
func FormatValidationError(err error) map[string]string {
	if err == nil {
		return nil
	}

	errs := make(map[string]string)

	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		errs["error"] = "Invalid request format"
		return errs
	}

	for _, e := range validationErrors {
		field := strings.ToLower(e.Field())
		switch e.Tag() {
		case "required":
			errs[field] = "This field is required"
		case "resolvemode":
			errs[field] = "Invalid resolve mode"
		case "actioncontext":
			errs[field] = "Invalid action context"
		case "max":
			errs[field] = fmt.Sprintf("Must be at most %s", e.Param())
		case "min":
			errs[field] = fmt.Sprintf("Must be at least %s", e.Param())
		default:
			errs[field] = "Invalid value"
		}
	}

	return errs
}
