package resource

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/erp/erpapi/internal/domain/shared"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Validator applies field rules declared in `validate` tags and renders
// failures as client-facing messages.
type Validator struct {
	v *validator.Validate
}

// NewValidator builds a validator that understands decimal, date and UUID
// fields and the decimal tags dmin, dmax, dmax_digits and dplaces.
func NewValidator() *Validator {
	v := validator.New(validator.WithRequiredStructEnabled())

	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	v.RegisterCustomTypeFunc(func(field reflect.Value) any {
		switch val := field.Interface().(type) {
		case decimal.Decimal:
			return val.String()
		case shared.Date:
			return val.String()
		case shared.TimeOfDay:
			return val.String()
		case uuid.UUID:
			if val == uuid.Nil {
				return ""
			}
			return val.String()
		}
		return nil
	}, decimal.Decimal{}, shared.Date{}, shared.TimeOfDay{}, uuid.UUID{})

	mustRegister(v, "dmin", func(d, bound decimal.Decimal) bool { return d.GreaterThanOrEqual(bound) })
	mustRegister(v, "dmax", func(d, bound decimal.Decimal) bool { return d.LessThanOrEqual(bound) })
	mustRegister(v, "dmax_digits", func(d, bound decimal.Decimal) bool {
		digits, _ := precision(d)
		return int64(digits) <= bound.IntPart()
	})
	mustRegister(v, "dplaces", func(d, bound decimal.Decimal) bool {
		_, places := precision(d)
		return int64(places) <= bound.IntPart()
	})

	return &Validator{v: v}
}

func mustRegister(v *validator.Validate, tag string, check func(d, bound decimal.Decimal) bool) {
	err := v.RegisterValidation(tag, func(fl validator.FieldLevel) bool {
		d, err := decimal.NewFromString(fl.Field().String())
		if err != nil {
			return false
		}
		bound, err := decimal.NewFromString(fl.Param())
		if err != nil {
			return false
		}
		return check(d, bound)
	})
	if err != nil {
		panic(fmt.Sprintf("resource: register %s: %v", tag, err))
	}
}

// precision returns the total significant digits and the decimal places of d
// as written, so 1500.00 has six digits and two places.
func precision(d decimal.Decimal) (digits, places int) {
	coefficient := strings.TrimPrefix(d.Coefficient().String(), "-")
	exp := int(d.Exponent())
	if exp >= 0 {
		if coefficient == "0" {
			return 1, 0
		}
		return len(coefficient) + exp, 0
	}
	places = -exp
	digits = len(coefficient)
	if digits < places {
		digits = places
	}
	return digits, places
}

// Field validates one field value against its rules and returns the message
// for the first failing rule, or "" when the value is valid.
func (val *Validator) Field(f Field, value any) string {
	if f.Rules == "" {
		return ""
	}
	err := val.v.Var(value, f.Rules)
	if err == nil {
		return ""
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) || len(verrs) == 0 {
		return "Invalid value."
	}
	return message(f, verrs[0])
}

// Struct validates a whole entity, used by actions that mutate records
// outside the field decoder.
func (val *Validator) Struct(meta *Meta, entity any) *shared.ValidationError {
	verr := shared.NewValidationError()
	for _, f := range meta.Fields {
		if f.ReadOnly {
			continue
		}
		if msg := val.Field(f, f.value(reflect.ValueOf(entity)).Interface()); msg != "" {
			verr.Add(f.Name, msg)
		}
	}
	return verr
}

// message returns a human-readable validation message
func message(f Field, e validator.FieldError) string {
	switch e.Tag() {
	case "required":
		if len(f.Choices) > 0 {
			return `"" is not a valid choice.`
		}
		return "This field may not be blank."
	case "email":
		return "Enter a valid email address."
	case "url":
		return "Enter a valid URL."
	case "ip":
		return "Enter a valid IPv4 or IPv6 address."
	case "min":
		if f.Kind == KindString {
			return "Ensure this field has at least " + e.Param() + " characters."
		}
		return "Ensure this value is greater than or equal to " + e.Param() + "."
	case "max":
		if f.Kind == KindString {
			return "Ensure this field has no more than " + e.Param() + " characters."
		}
		return "Ensure this value is less than or equal to " + e.Param() + "."
	case "oneof":
		return fmt.Sprintf("%q is not a valid choice.", fmt.Sprint(e.Value()))
	case "dmin":
		return "Ensure this value is greater than or equal to " + e.Param() + "."
	case "dmax":
		return "Ensure this value is less than or equal to " + e.Param() + "."
	case "dmax_digits":
		return "Ensure that there are no more than " + e.Param() + " digits in total."
	case "dplaces":
		return "Ensure that there are no more than " + e.Param() + " decimal places."
	default:
		return "Invalid value."
	}
}
