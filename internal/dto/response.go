package dto

import (
	"errors"
	"fmt"
	"net/http"
	"reflect"
	"strconv"
	"strings"

	res "github.com/SergSukh/api-yamdb-33-all/packages/response"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

// Response envelope shape, documented for swagger
type Response struct {
	Code    int    `json:"code" example:"100"`
	Message string `json:"message" example:"success"`
	Data    any    `json:"data,omitempty"`
}

func init() {
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		v.RegisterTagNameFunc(jsonTagName)
	}
}

func jsonTagName(f reflect.StructField) string {
	name, _, _ := strings.Cut(f.Tag.Get("json"), ",")
	if name == "-" {
		return ""
	}
	return name
}

func SuccessResponse(c *gin.Context, data any) {
	c.JSON(http.StatusOK, res.SuccessResponse(data))
}

func CreatedResponse(c *gin.Context, data any) {
	c.JSON(http.StatusCreated, res.SuccessResponse(data))
}

func NoContentResponse(c *gin.Context) {
	c.Status(http.StatusNoContent)
}

func ErrorResponse(c *gin.Context, err *res.BusinessError) {
	c.JSON(err.Status(), res.ErrorResponse(err))
}

// ValidationErrorResponse reports binding failures, one message per JSON field.
func ValidationErrorResponse(c *gin.Context, err error) {
	ErrorResponse(c, BindingError(err))
}

// BindingError converts a gin binding error into a business error.
func BindingError(err error) *res.BusinessError {
	var validationErrs validator.ValidationErrors
	if !errors.As(err, &validationErrs) || len(validationErrs) == 0 {
		return res.NewBusinessError(
			res.WithErrorCode(res.ParseError),
			res.WithErrorMessage("malformed request body: "+err.Error()),
			res.WithError(err),
		)
	}

	opts := []res.ErrorOption{
		res.WithErrorCode(res.InvalidParameter),
		res.WithErrorMessage("validation failed"),
	}
	for _, fe := range validationErrs {
		opts = append(opts, res.WithErrorField(fieldName(fe), fieldMessage(fe)))
	}
	return res.NewBusinessError(opts...)
}

func fieldName(fe validator.FieldError) string {
	if name := fe.Field(); name != "" && name != fe.StructField() {
		return name
	}
	return toSnakeCase(fe.StructField())
}

func fieldMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "this field is required"
	case "max":
		return fmt.Sprintf("ensure this field has no more than %s characters", fe.Param())
	case "min":
		return fmt.Sprintf("ensure this field has at least %s characters", fe.Param())
	case "gte":
		return fmt.Sprintf("ensure this value is greater than or equal to %s", fe.Param())
	case "lte":
		return fmt.Sprintf("ensure this value is less than or equal to %s", fe.Param())
	case "email":
		return "enter a valid email address"
	case "oneof":
		return fmt.Sprintf("must be one of: %s", fe.Param())
	default:
		return fmt.Sprintf("failed on the %q rule", fe.Tag())
	}
}

func toSnakeCase(s string) string {
	var result strings.Builder
	for i, r := range s {
		if i > 0 && r >= 'A' && r <= 'Z' {
			result.WriteRune('_')
		}
		result.WriteRune(r)
	}
	return strings.ToLower(result.String())
}

// BindJSON binds the body into obj and writes the error response on failure.
func BindJSON(c *gin.Context, obj any) bool {
	if err := c.ShouldBindJSON(obj); err != nil {
		ValidationErrorResponse(c, err)
		return false
	}
	return true
}

// ParseID reads a numeric path parameter; malformed ids are reported as not found.
func ParseID(c *gin.Context, name string) (uint, bool) {
	id, err := strconv.ParseUint(c.Param(name), 10, 64)
	if err != nil || id == 0 {
		ErrorResponse(c, res.NotFoundError("not found"))
		return 0, false
	}
	return uint(id), true
}
