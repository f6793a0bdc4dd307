// Package validation configures the request validator shared by the HTTP adapters.
package validation

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
)

// New returns a validator that also understands the isodate tag (YYYY-MM-DD).
func New() *validator.Validate {
	v := validator.New()
	_ = v.RegisterValidation("isodate", validateISODate)
	return v
}

func validateISODate(fl validator.FieldLevel) bool {
	_, err := time.Parse("2006-01-02", fl.Field().String())
	return err == nil
}

// Message flattens validator errors into "field: rule" pairs.
func Message(err error) string {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err.Error()
	}
	parts := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		parts = append(parts, fmt.Sprintf("%s: %s", fe.Namespace(), fe.Tag()))
	}
	return strings.Join(parts, "; ")
}
