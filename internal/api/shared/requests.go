package shared

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/go-playground/validator/v10"
)

// MaxRequestBodyBytes bounds every decoded JSON body.
const MaxRequestBodyBytes = 1 << 20

// ErrEmptyBody is returned by DecodeJSON for a request without a body.
var ErrEmptyBody = errors.New("request body is empty")

// Global validator instance for reuse
var validate = validator.New(validator.WithRequiredStructEnabled())

// DecodeJSON decodes a single JSON value from the request body into v.
// A wrong JSON type for any field is a decode error.
func DecodeJSON(r *http.Request, v interface{}) error {
	if r.Body == nil {
		return ErrEmptyBody
	}
	dec := json.NewDecoder(io.LimitReader(r.Body, MaxRequestBodyBytes))
	if err := dec.Decode(v); err != nil {
		if errors.Is(err, io.EOF) {
			return ErrEmptyBody
		}
		return fmt.Errorf("invalid JSON body: %w", err)
	}
	return nil
}

// ValidateRequest runs the struct tag rules on v and then, if v has one, its
// own Validate method. The first failure is returned.
func ValidateRequest(v interface{}) error {
	if err := validate.Struct(v); err != nil {
		return err
	}
	if validator, ok := v.(interface{ Validate() error }); ok {
		return validator.Validate()
	}
	return nil
}
