package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
)

type APIError struct {
	Message string           `json:"message"`
	Code    string           `json:"code,omitempty"`
	Details []FieldViolation `json:"details,omitempty"`
}

type FieldViolation struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

type ErrorEnvelope struct {
	Error APIError `json:"error"`
}

func respondError(c *gin.Context, status int, code string, err error) {
	msg := "unknown error"
	if err != nil {
		msg = err.Error()
	}
	c.JSON(status, ErrorEnvelope{
		Error: APIError{
			Message: msg,
			Code:    code,
		},
	})
}

// respondInvalid maps binding failures onto a 400 with one violation
// per offending field. Unknown fields are ignored by the decoder and
// never reach this path.
func respondInvalid(c *gin.Context, code string, err error) {
	var details []FieldViolation

	var vErrs validator.ValidationErrors
	var typeErr *json.UnmarshalTypeError
	switch {
	case errors.As(err, &vErrs):
		for _, fe := range vErrs {
			details = append(details, FieldViolation{
				Field:   fieldName(fe.Field()),
				Message: violationMessage(fe),
			})
		}
	case errors.As(err, &typeErr):
		details = append(details, FieldViolation{
			Field:   typeErr.Field,
			Message: "must be of type " + typeErr.Type.String(),
		})
	}

	c.JSON(http.StatusBadRequest, ErrorEnvelope{
		Error: APIError{
			Message: "invalid request data",
			Code:    code,
			Details: details,
		},
	})
}

func fieldName(structField string) string {
	if structField == "" {
		return structField
	}
	return strings.ToLower(structField[:1]) + structField[1:]
}

func violationMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	default:
		return "failed validation rule " + fe.Tag()
	}
}
