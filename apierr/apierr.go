// Package apierr defines one error type per failure class the API can
// report, plus the mapping from errors to HTTP responses. Handlers build
// these instead of inspecting error strings.
package apierr

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
)

// ValidationError reports malformed or out-of-range input, including
// uniqueness conflicts such as a duplicate email.
type ValidationError struct {
	Message string            `json:"message"`
	Fields  map[string]string `json:"errors,omitempty"`
}

func (e *ValidationError) Error() string { return e.Message }

// NewValidation builds a single-field validation failure.
func NewValidation(field, message string) *ValidationError {
	return &ValidationError{
		Message: message,
		Fields:  map[string]string{field: message},
	}
}

// InvalidReferenceError reports a foreign id that does not resolve to an
// existing document.
type InvalidReferenceError struct {
	Entity string
	ID     string
}

func (e *InvalidReferenceError) Error() string {
	return fmt.Sprintf("%s with id %s does not exist", e.Entity, e.ID)
}

// InvalidQueryError reports a sort field or order outside the allow-list.
type InvalidQueryError struct {
	Param string
	Value string
}

func (e *InvalidQueryError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Param, e.Value)
}

// NotFoundError reports an identifier or filter that matched nothing.
type NotFoundError struct {
	Message string
}

func (e *NotFoundError) Error() string { return e.Message }

// NewNotFound builds a not-found error for a named resource, e.g.
// "Order not found".
func NewNotFound(resource string) *NotFoundError {
	return &NotFoundError{Message: resource + " not found"}
}

// Respond writes the JSON response and status code for err. Anything
// outside the taxonomy is treated as a store failure and surfaces only
// the underlying message.
func Respond(c *gin.Context, err error) {
	var (
		validation *ValidationError
		reference  *InvalidReferenceError
		query      *InvalidQueryError
		notFound   *NotFoundError
	)
	switch {
	case errors.As(err, &validation):
		c.JSON(http.StatusBadRequest, validation)
	case errors.As(err, &reference):
		c.JSON(http.StatusBadRequest, gin.H{"message": reference.Error()})
	case errors.As(err, &query):
		c.JSON(http.StatusBadRequest, gin.H{"message": query.Error()})
	case errors.As(err, &notFound):
		c.JSON(http.StatusNotFound, gin.H{"message": notFound.Message})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"message": err.Error()})
	}
}
