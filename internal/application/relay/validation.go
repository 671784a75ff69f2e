package relay

import (
	"encoding/json"
	"errors"
	"reflect"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"
	"github.com/supplierhub/relay/internal/domain/relay"
)

var (
	validate     *validator.Validate
	validateOnce sync.Once
)

// typeMessenger overrides the message for a body field sent with the wrong
// JSON type. path is the dotted field path reported by encoding/json.
type typeMessenger interface {
	typeMessage(path string) string
}

// fieldMessenger turns the first failing field of a command into the
// caller-facing message for that endpoint.
type fieldMessenger interface {
	fieldMessage(fe validator.FieldError) string
}

func commandValidator() *validator.Validate {
	validateOnce.Do(func() {
		v := validator.New()
		// Report JSON names so messages match the request body
		v.RegisterTagNameFunc(func(fld reflect.StructField) string {
			for _, key := range []string{"json", "uri", "form"} {
				name := strings.SplitN(fld.Tag.Get(key), ",", 2)[0]
				if name != "" && name != "-" {
					return name
				}
			}
			return ""
		})
		v.RegisterCustomTypeFunc(func(field reflect.Value) any {
			return field.Interface().(Number).validationValue()
		}, Number{})
		v.RegisterCustomTypeFunc(func(field reflect.Value) any {
			return field.Interface().(Flag).validationValue()
		}, Flag{})
		v.RegisterCustomTypeFunc(func(field reflect.Value) any {
			return field.Interface().(ID).validationValue()
		}, ID{})
		// present: the value was sent. Absent values fail before reaching it.
		_ = v.RegisterValidation("present", func(fl validator.FieldLevel) bool { return true })
		_ = v.RegisterValidation("strictbool", func(fl validator.FieldLevel) bool {
			return fl.Field().Kind() == reflect.Bool
		})
		_ = v.RegisterValidation("identifier", func(fl validator.FieldLevel) bool {
			return fl.Field().Kind() == reflect.String
		})
		v.RegisterStructValidation(availabilityStructLevel, UpdateAvailabilityCommand{})
		validate = v
	})
	return validate
}

// validateCommand runs the struct tags and reports the first failure
func validateCommand(cmd fieldMessenger) error {
	err := commandValidator().Struct(cmd)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) && len(verrs) > 0 {
		fe := verrs[0]
		if fe.Tag() == "identifier" {
			return relay.NewValidationError(fe.Field(), fe.Field()+" must be a string or number")
		}
		return relay.NewValidationError(fe.Field(), cmd.fieldMessage(fe))
	}
	return relay.NewInternalError(err)
}

// inList reports whether the failing field sits inside the named slice
func inList(fe validator.FieldError, list string) bool {
	return strings.Contains(fe.Namespace(), "."+list+"[")
}

// TypeMismatch maps a JSON decode error on a known field of cmd to a
// validation error. It returns nil when err is not a field type mismatch.
func TypeMismatch(cmd any, err error) *relay.Error {
	var typeErr *json.UnmarshalTypeError
	if !errors.As(err, &typeErr) || typeErr.Field == "" {
		return nil
	}
	path := typeErr.Field
	field := path[strings.LastIndex(path, ".")+1:]

	if tm, ok := cmd.(typeMessenger); ok {
		if msg := tm.typeMessage(path); msg != "" {
			return relay.NewValidationError(field, msg)
		}
	}
	return relay.NewValidationError(field, field+" must be "+jsonKind(typeErr.Type))
}

func jsonKind(t reflect.Type) string {
	if t == nil {
		return "valid"
	}
	switch t.Kind() {
	case reflect.String:
		return "a string"
	case reflect.Slice, reflect.Array:
		return "an array"
	case reflect.Struct, reflect.Map:
		return "an object"
	case reflect.Bool:
		return "a boolean"
	case reflect.Pointer:
		return jsonKind(t.Elem())
	}
	return "a number"
}
