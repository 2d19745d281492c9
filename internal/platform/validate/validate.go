// Package validate configures the request payload validator shared by the
// route handlers.
package validate

import (
	"errors"
	"reflect"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
)

// New builds a validator that reports JSON field names and understands the
// domain rules used by request DTOs.
func New() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" || name == "" {
			return fld.Name
		}
		return name
	})
	// equity: decimal string in [0, 1]
	_ = v.RegisterValidation("equity", func(fl validator.FieldLevel) bool {
		f, err := strconv.ParseFloat(fl.Field().String(), 64)
		return err == nil && f >= 0 && f <= 1
	})
	return v
}

// Messages flattens validator errors into one message per failed field.
func Messages(err error) []string {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return []string{err.Error()}
	}
	messages := make([]string, len(verrs))
	for i, fe := range verrs {
		messages[i] = "instance." + fe.Field() + " does not conform to the " + fe.Tag() + " rule"
	}
	return messages
}
