// Package validation gates shipment submissions before they are priced or
// turned into orders. Validate reports every broken rule at once so a form
// can show all errors together.
package validation

import (
	"errors"
	"fmt"
	"net/url"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/buy2send/shipping-rates/internal/core/domain"
)

// SupportedCurrencies is the closed set of item value currencies.
var SupportedCurrencies = []string{"USD", "EUR", "GBP", "LKR", "INR", "AUD", "CAD", "JPY", "CNY", "AED", "SGD", "MYR"}

// Validator checks shipment submissions. It is safe for concurrent use.
type Validator struct {
	v *validator.Validate
}

// New builds a Validator with the shipment rules registered.
func New() *Validator {
	v := validator.New()

	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	mustRegister(v, "notblank", func(fl validator.FieldLevel) bool {
		return strings.TrimSpace(fl.Field().String()) != ""
	})
	mustRegister(v, "phone", func(fl validator.FieldLevel) bool {
		_, err := DecomposePhone(fl.Field().String())
		return err == nil
	})
	mustRegister(v, "abs_url", func(fl validator.FieldLevel) bool {
		return isAbsoluteURL(fl.Field().String())
	})
	mustRegister(v, "item_currency", func(fl validator.FieldLevel) bool {
		return isSupportedCurrency(fl.Field().String())
	})

	v.RegisterStructValidation(dimensionsAllOrNone, domain.Dimensions{})

	return &Validator{v: v}
}

func mustRegister(v *validator.Validate, tag string, fn validator.Func) {
	if err := v.RegisterValidation(tag, fn); err != nil {
		panic(fmt.Sprintf("validation: register %q: %v", tag, err))
	}
}

// Validate returns every rule s breaks, or nil when it is acceptable.
func (val *Validator) Validate(s domain.Submission) []domain.FieldViolation {
	if s == nil {
		return []domain.FieldViolation{{Field: "shipmentType", Message: "shipmentType is required"}}
	}

	err := val.v.Struct(s)
	if err == nil {
		return nil
	}

	var ve validator.ValidationErrors
	if !errors.As(err, &ve) {
		return []domain.FieldViolation{{Field: "", Message: err.Error()}}
	}

	out := make([]domain.FieldViolation, 0, len(ve))
	for _, fe := range ve {
		out = append(out, domain.FieldViolation{
			Field:   fieldPath(fe.Namespace()),
			Message: fieldMessage(fe),
		})
	}
	return out
}

// dimensionsAllOrNone rejects a partially filled set of dimensions.
func dimensionsAllOrNone(sl validator.StructLevel) {
	dims := sl.Current().Interface().(domain.Dimensions)
	if n := dims.Set(); n != 0 && n != 3 {
		sl.ReportError(dims, "", "", "all_or_none", fmt.Sprint(n))
	}
}

// fieldPath turns a validator namespace such as
// "LinkShipment.ShipmentBase.items[0].productUrl" into "items[0].productUrl".
func fieldPath(ns string) string {
	parts := strings.Split(ns, ".")
	if len(parts) > 0 {
		parts = parts[1:]
	}
	kept := parts[:0]
	for _, p := range parts {
		if p == "" || p == "ShipmentBase" {
			continue
		}
		kept = append(kept, p)
	}
	return strings.Join(kept, ".")
}

func fieldMessage(fe validator.FieldError) string {
	field := fe.Field()
	switch fe.Tag() {
	case "required", "notblank":
		return field + " is required"
	case "email":
		return field + " must be a valid email"
	case "abs_url":
		return field + " must be a valid URL"
	case "phone":
		return field + " must be a valid international phone number"
	case "item_currency":
		return fmt.Sprintf("%s must be one of: %s", field, strings.Join(SupportedCurrencies, " "))
	case "iso3166_1_alpha2":
		return field + " must be an ISO 3166-1 alpha-2 country code"
	case "all_or_none":
		return "length, width and height must be given together"
	case "gt":
		return fmt.Sprintf("%s must be greater than %s", field, fe.Param())
	case "gte":
		return fmt.Sprintf("%s must be at least %s", field, fe.Param())
	case "min":
		return fmt.Sprintf("%s must contain at least %s item(s)", field, fe.Param())
	default:
		return fmt.Sprintf("%s failed validation (%s)", field, fe.Tag())
	}
}

// isAbsoluteURL accepts hierarchical URLs with both a scheme and a host, so
// "foo:bar" and "mailto:x@y.z" are rejected.
func isAbsoluteURL(raw string) bool {
	u, err := url.Parse(strings.TrimSpace(raw))
	if err != nil {
		return false
	}
	return u.Scheme != "" && u.Host != "" && u.Opaque == ""
}

func isSupportedCurrency(code string) bool {
	for _, c := range SupportedCurrencies {
		if c == code {
			return true
		}
	}
	return false
}
