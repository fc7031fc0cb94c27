package validation

import (
	"errors"
	"fmt"
	"reflect"
	"sort"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"

	"github.com/osse101/filecatalog/internal/pattern"
)

// Custom validation tags
const (
	TagNamePattern = "namepattern"
	TagSidecars    = "sidecars"
)

// Validator wraps the validator instance
type Validator struct {
	validate *validator.Validate
}

var (
	shared     *Validator
	sharedOnce sync.Once
)

// NewValidator returns a validator that reports fields by their yaml
// names and knows the catalog-specific tags.
func NewValidator() *Validator {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(yamlName)
	_ = v.RegisterValidation(TagNamePattern, validateNamePattern)
	_ = v.RegisterValidation(TagSidecars, validateSidecars)
	return &Validator{validate: v}
}

// GetValidator returns the shared validator instance
func GetValidator() *Validator {
	sharedOnce.Do(func() { shared = NewValidator() })
	return shared
}

// ValidateStruct validates a struct using tags
func (v *Validator) ValidateStruct(s any) error {
	return v.validate.Struct(s)
}

// FormatValidationError turns validator errors into field → message pairs.
func FormatValidationError(err error) map[string]string {
	if err == nil {
		return nil
	}

	errs := make(map[string]string)
	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		errs["error"] = err.Error()
		return errs
	}

	for _, e := range validationErrors {
		field := e.Field()
		switch e.Tag() {
		case "required":
			errs[field] = "This field is required"
		case "oneof":
			errs[field] = fmt.Sprintf("Must be one of: %s", e.Param())
		case "min":
			errs[field] = fmt.Sprintf("Must be at least %s", e.Param())
		case TagNamePattern:
			errs[field] = "Not a valid file name pattern"
		case TagSidecars:
			errs[field] = "Sidecar extensions must not contain path separators"
		default:
			errs[field] = "Invalid value"
		}
	}
	return errs
}

// Summary joins FormatValidationError output into one sorted line.
func Summary(err error) string {
	msgs := FormatValidationError(err)
	parts := make([]string, 0, len(msgs))
	for field, msg := range msgs {
		parts = append(parts, field+": "+msg)
	}
	sort.Strings(parts)
	return strings.Join(parts, "; ")
}

func yamlName(f reflect.StructField) string {
	name := strings.SplitN(f.Tag.Get("yaml"), ",", 2)[0]
	if name == "-" {
		return ""
	}
	if name == "" {
		return f.Name
	}
	return name
}

func validateNamePattern(fl validator.FieldLevel) bool {
	s := fl.Field().String()
	if s == "" {
		return true
	}
	_, err := pattern.Compile(s, 1)
	return err == nil
}

func validateSidecars(fl validator.FieldLevel) bool {
	for _, part := range strings.Split(fl.Field().String(), ";") {
		ext := strings.TrimPrefix(strings.TrimSpace(part), "+")
		for _, r := range ext {
			if !pattern.IsValidChar(r, false) {
				return false
			}
		}
	}
	return true
}
