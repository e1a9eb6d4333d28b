package api

import (
	"errors"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

// ErrInvalidInput is the marker error for aggregated validation failures.
// Nothing is sent over the wire when it is returned. Field-level details are
// retrieved via FieldErrors(err).
var ErrInvalidInput = errors.New("invalid input")

// FieldError describes a single invalid field in a request.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// invalidInputError aggregates multiple FieldError instances and unwraps to ErrInvalidInput.
type invalidInputError struct {
	fields []FieldError
}

func (e *invalidInputError) Error() string        { return ErrInvalidInput.Error() }
func (e *invalidInputError) Unwrap() error        { return ErrInvalidInput }
func (e *invalidInputError) Fields() []FieldError { return e.fields }

// NewInvalidInputError builds an aggregated validation error if any field errors are present.
func NewInvalidInputError(fe []FieldError) error {
	if len(fe) == 0 {
		return nil
	}
	return &invalidInputError{fields: fe}
}

// FieldErrors extracts field errors from an aggregated validation error.
func FieldErrors(err error) []FieldError {
	var ie *invalidInputError
	if errors.As(err, &ie) {
		return ie.Fields()
	}
	return nil
}

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	// report wire names, not Go names
	v.RegisterTagNameFunc(jsonName)
	return v
}

// validatePayload runs struct tags and folds validator output into FieldErrors.
func (c *Client) validatePayload(payload any, extra ...FieldError) error {
	ferrs := append([]FieldError(nil), extra...)
	if err := c.validate.Struct(payload); err != nil {
		var verrs validator.ValidationErrors
		if !errors.As(err, &verrs) {
			return err
		}
		for _, fe := range verrs {
			ferrs = append(ferrs, FieldError{Field: fe.Field(), Message: describeTag(fe, reflect.TypeOf(payload))})
		}
	}
	return NewInvalidInputError(ferrs)
}

func describeTag(fe validator.FieldError, payload reflect.Type) string {
	switch fe.Tag() {
	case "required":
		return "must not be empty"
	case "max":
		return "length must be <= " + fe.Param()
	case "min":
		return "length must be >= " + fe.Param()
	case "nefield":
		return "must differ from " + wireName(payload, fe.Param())
	default:
		return "failed " + fe.Tag() + " check"
	}
}

// wireName maps a Go field name of payload to its json name. Unknown fields
// are returned as given.
func wireName(payload reflect.Type, goName string) string {
	for payload != nil && payload.Kind() == reflect.Pointer {
		payload = payload.Elem()
	}
	if payload == nil || payload.Kind() != reflect.Struct {
		return goName
	}
	f, ok := payload.FieldByName(goName)
	if !ok {
		return goName
	}
	if name := jsonName(f); name != "" {
		return name
	}
	return goName
}

func jsonName(f reflect.StructField) string {
	name := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
	if name == "-" {
		return ""
	}
	return name
}

// idError reports a blank identity; ids are otherwise opaque.
func idError(field, id string) []FieldError {
	if strings.TrimSpace(id) == "" {
		return []FieldError{{Field: field, Message: "must not be empty"}}
	}
	return nil
}
