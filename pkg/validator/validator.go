package validator

import (
	"github.com/go-playground/validator/v10"

	"github.com/devpulse-team/devpulse/internal/domain/entities"
)

// CustomValidator implements echo.Validator using go-playground/validator
type CustomValidator struct {
	v *validator.Validate
}

// New creates a validator with the domain's custom rules registered
func New() *CustomValidator {
	v := validator.New()

	// action_priority accepts the four action-item priority values
	_ = v.RegisterValidation("action_priority", func(fl validator.FieldLevel) bool {
		switch entities.ActionItemPriority(fl.Field().String()) {
		case entities.ActionItemPriorityLow,
			entities.ActionItemPriorityMedium,
			entities.ActionItemPriorityHigh,
			entities.ActionItemPriorityUrgent:
			return true
		}
		return false
	})

	return &CustomValidator{v: v}
}

// Validate performs struct validation
func (cv *CustomValidator) Validate(i interface{}) error {
	return cv.v.Struct(i)
}
