package forms

import (
	"errors"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

// FormErrorKey holds a message that belongs to the form as a whole rather
// than to one field.
const FormErrorKey = "_form"

// FieldErrors maps a form field name to a message for the visitor.
// An empty map means the form is valid.
type FieldErrors map[string]string

// Has reports whether field has an error.
func (fe FieldErrors) Has(field string) bool {
	_, ok := fe[field]
	return ok
}

var messages = map[string]string{
	"required": "Wajib diisi",
	"email":    "Format email tidak valid",
	"max":      "Terlalu panjang",
}

// NewValidator returns a validator that reports fields by their form name.
func NewValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("form"), ",", 2)[0]
		if name == "-" || name == "" {
			return fld.Name
		}
		return name
	})
	return v
}

// validate runs v over form and translates failures into FieldErrors.
// Only the first failure per field is kept.
func validate(v *validator.Validate, form any) FieldErrors {
	errs := FieldErrors{}
	err := v.Struct(form)
	if err == nil {
		return errs
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		errs[FormErrorKey] = "Data formulir tidak dapat diproses"
		return errs
	}
	for _, fe := range verrs {
		if errs.Has(fe.Field()) {
			continue
		}
		msg, ok := messages[fe.Tag()]
		if !ok {
			msg = "Tidak valid"
		}
		errs[fe.Field()] = msg
	}
	return errs
}
