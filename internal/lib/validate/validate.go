package validate

import (
	"errors"
	"reflect"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"
)

var (
	instance *validator.Validate
	once     sync.Once
)

func get() *validator.Validate {
	once.Do(func() {
		instance = validator.New(validator.WithRequiredStructEnabled())
		instance.RegisterTagNameFunc(func(fld reflect.StructField) string {
			name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
			if name == "-" || name == "" {
				return fld.Name
			}
			return name
		})
		_ = instance.RegisterValidation("filled", filled)
	})
	return instance
}

func Struct(s interface{}) error {
	return get().Struct(s)
}

// Fields returns the names of the fields that failed validation, in
// declaration order. Errors that are not validation errors yield nil.
func Fields(err error) []string {
	var ve validator.ValidationErrors
	if !errors.As(err, &ve) {
		return nil
	}
	fields := make([]string, 0, len(ve))
	for _, fe := range ve {
		fields = append(fields, fe.Field())
	}
	return fields
}

// filled rejects empty strings, slices and maps held in opaque values;
// numbers and booleans always pass.
func filled(fl validator.FieldLevel) bool {
	field := fl.Field()
	switch field.Kind() {
	case reflect.String, reflect.Slice, reflect.Map, reflect.Array:
		return field.Len() > 0
	case reflect.Invalid:
		return false
	default:
		return true
	}
}
