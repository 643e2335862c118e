package errors

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
)

// Respond writes a FieldErrors body with its HTTP status.
func Respond(c *gin.Context, fieldErrs *FieldErrors) {
	status := http.StatusBadRequest
	if fieldErrs != nil && fieldErrs.Status != 0 {
		status = fieldErrs.Status
	}
	fields := map[string]string{}
	if fieldErrs != nil && fieldErrs.Fields != nil {
		fields = fieldErrs.Fields
	}
	c.JSON(status, fields)
}

// ErrorMapper converts a domain or application error into FieldErrors.
type ErrorMapper func(err error) (*FieldErrors, bool)

// Responder maps arbitrary errors onto field-error responses, falling back
// to a generic 500 body when no mapper claims the error.
type Responder struct {
	mappers []ErrorMapper
}

// NewResponder builds a responder with the given mapper chain.
func NewResponder(mappers ...ErrorMapper) *Responder {
	return &Responder{mappers: mappers}
}

// AddMapper appends a mapper to the chain.
func (r *Responder) AddMapper(mapper ErrorMapper) {
	r.mappers = append(r.mappers, mapper)
}

// RespondError resolves err through the chain and writes the body.
func (r *Responder) RespondError(c *gin.Context, err error) {
	if err == nil {
		return
	}
	var fieldErrs *FieldErrors
	if errors.As(err, &fieldErrs) {
		Respond(c, fieldErrs)
		return
	}
	for _, mapper := range r.mappers {
		if mapped, ok := mapper(err); ok {
			Respond(c, mapped)
			return
		}
	}
	c.JSON(http.StatusInternalServerError, gin.H{
		FieldGeneral: "Unexpected error occurred: " + err.Error(),
	})
}

// RespondError writes err through an empty default responder.
func RespondError(c *gin.Context, err error) {
	(&Responder{}).RespondError(c, err)
}
