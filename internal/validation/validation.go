// Package validation checks request records before any store access.
//
// It reports missing required fields separately from out-of-range and
// malformed values so callers can render either. Referential checks are not
// done here: they need the store and belong to the services.
package validation

import (
	"errors"
	"fmt"
	"reflect"
	"strconv"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"

	"github.com/sbilibin2017/library-service/internal/models"
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())

	// Report JSON names instead of Go field names.
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	mustRegister(v, "score", func(fl validator.FieldLevel) bool {
		score := fl.Field().Int()
		return score >= models.MinScore && score <= models.MaxScore
	})
	mustRegister(v, "notblank", func(fl validator.FieldLevel) bool {
		return strings.TrimSpace(fl.Field().String()) != ""
	})
	// maxbytes bounds the encoded length, max counts runes.
	mustRegister(v, "maxbytes", func(fl validator.FieldLevel) bool {
		limit, err := strconv.Atoi(fl.Param())
		return err == nil && len(fl.Field().String()) <= limit
	})
	mustRegister(v, "isodate", func(fl validator.FieldLevel) bool {
		_, err := ParseDate(fl.Field().String())
		return err == nil
	})

	return v
}

func mustRegister(v *validator.Validate, tag string, fn validator.Func) {
	if err := v.RegisterValidation(tag, fn); err != nil {
		panic(fmt.Sprintf("validation: register %q: %v", tag, err))
	}
}

// Struct validates a request record. It returns nil or a *models.ValidationError.
func Struct(req any) error {
	err := validate.Struct(req)
	if err == nil {
		return nil
	}

	var ve validator.ValidationErrors
	if !errors.As(err, &ve) {
		return err
	}

	out := &models.ValidationError{Fields: make([]models.FieldError, 0, len(ve))}
	for _, fe := range ve {
		out.Fields = append(out.Fields, fieldError(fe))
	}
	return out
}

// fieldError classifies one validator failure and words its message.
func fieldError(fe validator.FieldError) models.FieldError {
	field := fe.Field()
	unit := ""
	if fe.Kind() == reflect.String {
		unit = " characters"
	}

	switch fe.Tag() {
	case "required", "notblank":
		return models.FieldError{Field: field, Reason: models.ReasonMissing, Message: field + " is required"}
	case "score":
		return models.FieldError{
			Field:   field,
			Reason:  models.ReasonRange,
			Message: fmt.Sprintf("%s must be between %d and %d", field, models.MinScore, models.MaxScore),
		}
	case "gt":
		return models.FieldError{Field: field, Reason: models.ReasonRange, Message: fmt.Sprintf("%s must be greater than %s", field, fe.Param())}
	case "min":
		return models.FieldError{Field: field, Reason: models.ReasonRange, Message: fmt.Sprintf("%s must be at least %s%s", field, fe.Param(), unit)}
	case "max":
		return models.FieldError{Field: field, Reason: models.ReasonRange, Message: fmt.Sprintf("%s must be at most %s%s", field, fe.Param(), unit)}
	case "maxbytes":
		return models.FieldError{Field: field, Reason: models.ReasonRange, Message: fmt.Sprintf("%s must be at most %s bytes", field, fe.Param())}
	case "email":
		return models.FieldError{Field: field, Reason: models.ReasonFormat, Message: field + " must be a valid email"}
	case "isodate":
		return models.FieldError{Field: field, Reason: models.ReasonFormat, Message: field + " must be a date in YYYY-MM-DD or RFC 3339 format"}
	default:
		return models.FieldError{Field: field, Reason: models.ReasonFormat, Message: fmt.Sprintf("%s failed validation (%s)", field, fe.Tag())}
	}
}

// ParseDate accepts a calendar date (YYYY-MM-DD) or an RFC 3339 timestamp.
// Calendar dates are interpreted as midnight UTC.
func ParseDate(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	if t, err := time.Parse(models.DateLayout, s); err == nil {
		return t, nil
	}
	return time.Parse(time.RFC3339, s)
}
