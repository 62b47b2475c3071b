// Package validation builds the struct validator shared by every package that
// accepts user input.
package validation

import (
	"time"

	"github.com/go-playground/validator/v10"

	"github.com/ayoisaiah/schoolday/internal/timeutil"
)

// New returns a validator that understands the "clock" (12-hour time) and
// "date" (calendar date) tags. now anchors relative dates.
func New(now func() time.Time) *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())

	_ = v.RegisterValidation("clock", func(fl validator.FieldLevel) bool {
		return timeutil.ValidateClock(fl.Field().String())
	})

	_ = v.RegisterValidation("date", func(fl validator.FieldLevel) bool {
		_, err := timeutil.ParseDate(fl.Field().String(), now())
		return err == nil
	})

	return v
}
