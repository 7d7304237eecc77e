package handler

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"

	"github.com/gnomesuite/petstore-api/internal/dto"
)

func notFound(c *gin.Context, detail string) {
	c.JSON(http.StatusNotFound, dto.ErrorResponse{Detail: detail})
}

func badRequest(c *gin.Context, detail string) {
	c.JSON(http.StatusBadRequest, dto.ErrorResponse{Detail: detail})
}

func internalError(c *gin.Context) {
	c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Detail: "internal server error"})
}

// deleted acknowledges a successful delete with the generic envelope.
func deleted(c *gin.Context, message string) {
	c.JSON(http.StatusOK, dto.APIResponse{
		Code:      http.StatusOK,
		Type:      "success",
		Message:   message,
		Timestamp: time.Now().UTC(),
	})
}

// validationError turns a binding failure into a 422 with a per-field report.
// Non-validator failures (malformed JSON, wrong types) get a single "body"
// entry rather than leaking decoder internals.
func validationError(c *gin.Context, err error) {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		c.JSON(http.StatusUnprocessableEntity, dto.ValidationErrorResponse{
			Detail: []dto.FieldError{{Field: "body", Message: "invalid request body"}},
		})
		return
	}

	fields := make([]dto.FieldError, 0, len(verrs))
	for _, fe := range verrs {
		fields = append(fields, dto.FieldError{Field: fe.Field(), Message: fieldMessage(fe)})
	}
	c.JSON(http.StatusUnprocessableEntity, dto.ValidationErrorResponse{Detail: fields})
}

func fieldMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "field is required"
	case "min":
		if fe.Kind().String() == "string" {
			return "must be at least " + fe.Param() + " characters"
		}
		return "must be at least " + fe.Param()
	case "max":
		if fe.Kind().String() == "string" {
			return "must be at most " + fe.Param() + " characters"
		}
		return "must be at most " + fe.Param()
	case "gt":
		return "must be greater than " + fe.Param()
	case "oneof":
		return "must be one of: " + fe.Param()
	case "email":
		return "must be a valid email address"
	default:
		return "failed validation: " + fe.Tag()
	}
}

// parseID reads the numeric {id} path parameter. A non-numeric id is a
// payload shape problem, answered like any other validation failure.
func parseID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusUnprocessableEntity, dto.ValidationErrorResponse{
			Detail: []dto.FieldError{{Field: "id", Message: "must be an integer"}},
		})
		return 0, false
	}
	return id, true
}
