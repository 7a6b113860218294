package feed

import (
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/roomlog/roomlog/internal/api"
)

var validate = validator.New(validator.WithRequiredStructEnabled())

// Draft is a record under construction, validated locally before it is
// ever sent to the backend.
type Draft struct {
	Title   string    `validate:"required,max=120"`
	Theme   string    `validate:"required,max=80"`
	Store   string    `validate:"max=80"`
	Date    time.Time `validate:"required"`
	Escaped *bool
	Rating  *float64 `validate:"omitempty,gte=0,lte=5"`
	Members []string `validate:"max=10,dive,required"`
}

// ValidationError describes a locally rejected draft field.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

// Validate checks the draft and reports the first failing field.
func (d Draft) Validate() error {
	err := validate.Struct(d)
	if err == nil {
		return nil
	}

	if fieldErrs, ok := err.(validator.ValidationErrors); ok && len(fieldErrs) > 0 {
		fe := fieldErrs[0]

		return &ValidationError{Field: fe.Field(), Reason: reasonFor(fe)}
	}

	return err
}

func reasonFor(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "must not be empty"
	case "max":
		return fmt.Sprintf("must be at most %s", fe.Param())
	case "gte":
		return fmt.Sprintf("must be at least %s", fe.Param())
	case "lte":
		return fmt.Sprintf("must be at most %s", fe.Param())
	default:
		return fmt.Sprintf("failed %s check", fe.Tag())
	}
}

// Item converts a validated draft into the wire shape.
func (d Draft) Item() api.Item {
	return api.Item{
		Title:   d.Title,
		Theme:   d.Theme,
		Store:   d.Store,
		Date:    d.Date,
		Escaped: d.Escaped,
		Rating:  d.Rating,
		Members: d.Members,
	}
}
