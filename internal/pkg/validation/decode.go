package validation

import (
	"bytes"
	"errors"
	"io"

	"github.com/goccy/go-json"

	"github.com/yigit/alumni/internal/pkg/apperrors"
)

// Object is a decoded JSON object. Numbers are kept as json.Number so
// integers survive untouched.
type Object map[string]any

// DecodeObject decodes a request body into an Object. An empty body is an
// empty object. Malformed JSON is a bad request; valid JSON that is not an
// object is a validation failure.
func DecodeObject(raw []byte) (Object, error) {
	if len(bytes.TrimSpace(raw)) == 0 {
		return Object{}, nil
	}

	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.UseNumber()

	var v any
	if err := dec.Decode(&v); err != nil {
		return nil, apperrors.NewBadRequestError("Malformed JSON body")
	}
	var extra any
	if err := dec.Decode(&extra); !errors.Is(err, io.EOF) {
		return nil, apperrors.NewBadRequestError("Malformed JSON body")
	}

	obj, ok := v.(map[string]any)
	if !ok {
		return nil, apperrors.NewValidationError([]apperrors.FieldViolation{
			{Field: "body", Message: "request body must be a JSON object"},
		})
	}
	return Object(obj), nil
}

// The accessors below assume the object already passed Schema.Validate.
// They report false when the field is absent or null.

// String returns the string value of key.
func (o Object) String(key string) (string, bool) {
	s, ok := o[key].(string)
	return s, ok
}

// Int64 returns the integral value of key.
func (o Object) Int64(key string) (int64, bool) {
	v, present := o[key]
	if !present || v == nil {
		return 0, false
	}
	return integerValue(v)
}

// Bool returns the boolean value of key.
func (o Object) Bool(key string) (bool, bool) {
	b, ok := o[key].(bool)
	return b, ok
}

// ID returns the identifier value of key, given either as a string or a number.
func (o Object) ID(key string) (int64, bool) {
	v, present := o[key]
	if !present || v == nil {
		return 0, false
	}
	return idValue(v)
}

// Has reports whether key is present with a non-null value.
func (o Object) Has(key string) bool {
	v, present := o[key]
	return present && v != nil
}

// StringPtr is String as a pointer, nil when absent.
func (o Object) StringPtr(key string) *string {
	if s, ok := o.String(key); ok {
		return &s
	}
	return nil
}

// Int64Ptr is Int64 as a pointer, nil when absent.
func (o Object) Int64Ptr(key string) *int64 {
	if i, ok := o.Int64(key); ok {
		return &i
	}
	return nil
}

// IDPtr is ID as a pointer, nil when absent.
func (o Object) IDPtr(key string) *int64 {
	if id, ok := o.ID(key); ok {
		return &id
	}
	return nil
}
