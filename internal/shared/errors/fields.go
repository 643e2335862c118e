// Package errors provides the field-keyed error bodies shared by the
// catalog and auth endpoints: a flat map from field name to message,
// serialized as-is.
package errors

import (
	"fmt"
	"net/http"
	"sort"
	"strings"
)

// Recognized field keys. Handlers may add others, but these are the ones
// the storefront renders next to their inputs.
const (
	FieldName             = "name"
	FieldQuantity         = "quantity"
	FieldPrice            = "price"
	FieldLocation         = "location"
	FieldLocationOccupied = "locationOccupied"
	FieldUsername         = "username"
	FieldPassword         = "password"
	FieldRole             = "role"
	FieldAuthentication   = "authentication"
	FieldInvalid          = "invalid"
	FieldNotFound         = "notFound"
	FieldGeneral          = "general"
)

// FieldErrors is a validation failure keyed by field name. It is both an
// error and the literal response body.
type FieldErrors struct {
	Status int
	Fields map[string]string
}

// NewFieldErrors starts an empty 400 failure.
func NewFieldErrors() *FieldErrors {
	return &FieldErrors{Status: http.StatusBadRequest, Fields: map[string]string{}}
}

// Add records a message for a field, keeping the first message per key.
func (e *FieldErrors) Add(field, message string) *FieldErrors {
	if e.Fields == nil {
		e.Fields = map[string]string{}
	}
	if _, exists := e.Fields[field]; !exists {
		e.Fields[field] = message
	}
	return e
}

// WithStatus overrides the HTTP status, e.g. 404 for notFound failures.
func (e *FieldErrors) WithStatus(status int) *FieldErrors {
	e.Status = status
	return e
}

// HasErrors reports whether any field message was recorded.
func (e *FieldErrors) HasErrors() bool {
	return e != nil && len(e.Fields) > 0
}

// Field returns the message recorded for a key, if any.
func (e *FieldErrors) Field(key string) (string, bool) {
	if e == nil {
		return "", false
	}
	msg, ok := e.Fields[key]
	return msg, ok
}

// Error renders the fields deterministically for logs.
func (e *FieldErrors) Error() string {
	if !e.HasErrors() {
		return "validation failed"
	}
	keys := make([]string, 0, len(e.Fields))
	for k := range e.Fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, fmt.Sprintf("%s: %s", k, e.Fields[k]))
	}
	return strings.Join(parts, "; ")
}

// Single builds a one-field failure.
func Single(field, message string) *FieldErrors {
	return NewFieldErrors().Add(field, message)
}

// NotFound builds the canonical not-found failure for a resource.
func NotFound(resource string, id any) *FieldErrors {
	return Single(FieldNotFound, fmt.Sprintf("%s with id %v not found", resource, id)).
		WithStatus(http.StatusNotFound)
}
