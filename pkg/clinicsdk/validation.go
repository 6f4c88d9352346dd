package clinicsdk

import (
	"errors"
	"fmt"
	"reflect"
	"regexp"
	"sort"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"
)

var (
	// PhonePattern is the accepted Uzbek mobile number format.
	PhonePattern = regexp.MustCompile(`^(\+998|998)(9[0-9]|3[3]|8[8])[0-9]{7}$`)

	// ClockPattern accepts 24h HH:MM.
	ClockPattern = regexp.MustCompile(`^(?:[01]\d|2[0-3]):[0-5]\d$`)
)

var (
	validateOnce sync.Once
	validate     *validator.Validate
)

func instance() *validator.Validate {
	validateOnce.Do(func() {
		v := validator.New(validator.WithRequiredStructEnabled())

		// Report JSON names so messages match what the caller sent.
		v.RegisterTagNameFunc(func(f reflect.StructField) string {
			name, _, _ := strings.Cut(f.Tag.Get("json"), ",")
			if name == "-" {
				return ""
			}
			return name
		})

		_ = v.RegisterValidation("phone", func(fl validator.FieldLevel) bool {
			return PhonePattern.MatchString(fl.Field().String())
		})
		_ = v.RegisterValidation("clock", func(fl validator.FieldLevel) bool {
			return ClockPattern.MatchString(fl.Field().String())
		})

		validate = v
	})
	return validate
}

// ValidationError maps JSON field names to a short reason.
type ValidationError struct {
	Fields map[string]string
}

// Error reports the first field in name order so the message is stable.
func (e *ValidationError) Error() string {
	if len(e.Fields) == 0 {
		return "invalid request"
	}
	names := make([]string, 0, len(e.Fields))
	for name := range e.Fields {
		names = append(names, name)
	}
	sort.Strings(names)
	return fmt.Sprintf("%q %s", names[0], e.Fields[names[0]])
}

// Validate checks v against its validate tags. It returns nil or a
// *ValidationError.
func Validate(v any) error {
	err := instance().Struct(v)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return &ValidationError{Fields: map[string]string{"body": err.Error()}}
	}

	out := &ValidationError{Fields: make(map[string]string, len(verrs))}
	for _, fe := range verrs {
		out.Fields[fe.Field()] = reason(fe)
	}
	return out
}

func reason(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "phone":
		return "must be a valid phone number"
	case "clock":
		return "must be a time in HH:MM format"
	case "datetime":
		return "must be a date in YYYY-MM-DD format"
	case "ulid":
		return "must be a valid id"
	case "numeric":
		return "must contain only digits"
	case "oneof":
		return "must be one of: " + fe.Param()
	case "min", "gte":
		if fe.Kind() == reflect.String {
			return "must be at least " + fe.Param() + " characters"
		}
		return "must be at least " + fe.Param()
	case "max", "lte":
		if fe.Kind() == reflect.String {
			return "must be at most " + fe.Param() + " characters"
		}
		return "must be at most " + fe.Param()
	}
	return "is invalid"
}
