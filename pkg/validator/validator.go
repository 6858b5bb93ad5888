package validator

import (
	"github.com/go-playground/validator/v10"
)

// CustomValidator implements echo.Validator using go-playground/validator
type CustomValidator struct {
	v *validator.Validate
}

// New creates a new CustomValidator instance with domain-specific tags
func New() *CustomValidator {
	v := validator.New()

	// priority: high | medium | low
	_ = v.RegisterValidation("priority", func(fl validator.FieldLevel) bool {
		switch fl.Field().String() {
		case "high", "medium", "low":
			return true
		}
		return false
	})

	// task_status: pending | in_progress | completed
	_ = v.RegisterValidation("task_status", func(fl validator.FieldLevel) bool {
		switch fl.Field().String() {
		case "pending", "in_progress", "completed":
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
