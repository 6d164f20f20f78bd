package response

import (
	"errors"
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	playvalidator "github.com/go-playground/validator/v10"

	"schulhof.app/gradebook/pkg/apperror"
	"schulhof.app/gradebook/pkg/validator"
)

// ErrorBody is the wire shape of every error response.
type ErrorBody struct {
	Timestamp time.Time         `json:"timestamp"`
	Status    int               `json:"status"`
	Error     string            `json:"error"`
	Message   string            `json:"message"`
	Fields    map[string]string `json:"fields,omitempty"`
}

// GetUsername retrieves the authenticated username from the context
func GetUsername(c *gin.Context) (string, error) {
	username, exists := c.Get("username")
	if !exists {
		return "", apperror.ErrUnauthorized
	}
	name, ok := username.(string)
	if !ok || name == "" {
		return "", apperror.ErrUnauthorized
	}
	return name, nil
}

// GetRoles retrieves the authenticated caller's roles from the context
func GetRoles(c *gin.Context) []string {
	roles, exists := c.Get("roles")
	if !exists {
		return nil
	}
	out, ok := roles.([]string)
	if !ok {
		return nil
	}
	return out
}

// Error writes a standardized error response
func Error(c *gin.Context, err error) {
	code := apperror.MapErrorToStatus(err)

	body := ErrorBody{
		Timestamp: time.Now().UTC(),
		Status:    code,
		Error:     http.StatusText(code),
		Message:   err.Error(),
	}

	// Never leak internals to the caller
	if code == http.StatusInternalServerError {
		log.Printf("[Internal Error]: %v", err)
		body.Message = apperror.ErrInternal.Error()
	}

	c.JSON(code, body)
}

// BindingError writes a 400 with per-field messages when the error comes
// from request binding/validation.
func BindingError(c *gin.Context, err error) {
	body := ErrorBody{
		Timestamp: time.Now().UTC(),
		Status:    http.StatusBadRequest,
		Error:     http.StatusText(http.StatusBadRequest),
		Message:   apperror.ErrValidation.Error(),
	}

	var validationErrors playvalidator.ValidationErrors
	if errors.As(err, &validationErrors) {
		body.Fields = validator.FieldMessages(validationErrors)
	} else {
		body.Message = err.Error()
	}

	c.JSON(http.StatusBadRequest, body)
}
