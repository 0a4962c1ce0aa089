package api

import (
	"errors"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/equitybot/t212go/pkg/sdk/rest"
)

var schemaValidator = newSchemaValidator()

func newSchemaValidator() *validator.Validate {
	v := validator.New()
	// Report violations under the wire name, not the Go field name.
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// checkSchema enforces required-field semantics after JSON decoding: the
// json package happily leaves a missing field at its zero value, so fields
// tagged required are checked here and violations become *rest.SchemaError
// naming the JSON field. Slices are checked element-wise; an empty list is
// always valid.
func checkSchema(v any) error {
	rv := reflect.ValueOf(v)
	for rv.Kind() == reflect.Pointer {
		if rv.IsNil() {
			return nil
		}
		rv = rv.Elem()
	}

	switch rv.Kind() {
	case reflect.Slice, reflect.Array:
		for i := 0; i < rv.Len(); i++ {
			if err := checkSchema(rv.Index(i).Interface()); err != nil {
				return err
			}
		}
		return nil
	case reflect.Struct:
		err := schemaValidator.Struct(rv.Interface())
		if err == nil {
			return nil
		}
		var violations validator.ValidationErrors
		if errors.As(err, &violations) && len(violations) > 0 {
			return &rest.SchemaError{
				Field:  violations[0].Field(),
				Reason: "required field missing",
			}
		}
		return &rest.SchemaError{Cause: err}
	default:
		return nil
	}
}
