// Package response writes the standard API envelope:
// {"success":true,"data":...} on success,
// {"success":false,"message":...,"errors":{field:msg}} on failure.
package response

import (
	"errors"
	"net/http"
	"reflect"
	"strings"
	"sync"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

var tagNamesOnce sync.Once

// RegisterValidatorTagNames makes binding field errors report json field
// names instead of Go struct field names. Safe to call more than once.
func RegisterValidatorTagNames() {
	tagNamesOnce.Do(func() {
		if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
			v.RegisterTagNameFunc(func(fld reflect.StructField) string {
				name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
				if name == "-" {
					return ""
				}
				return name
			})
		}
	})
}

func OK(c *gin.Context, data interface{}) {
	c.JSON(http.StatusOK, gin.H{"success": true, "data": data})
}

func Created(c *gin.Context, data interface{}) {
	c.JSON(http.StatusCreated, gin.H{"success": true, "data": data})
}

func Fail(c *gin.Context, status int, message string) {
	c.JSON(status, gin.H{"success": false, "message": message})
}

func FailFields(c *gin.Context, status int, message string, fields map[string]string) {
	if len(fields) == 0 {
		Fail(c, status, message)
		return
	}
	c.JSON(status, gin.H{"success": false, "message": message, "errors": fields})
}

// BindError converts a gin binding failure into a 400 with a per-field
// error map when the underlying error is a validator error.
func BindError(c *gin.Context, err error) {
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		fields := make(map[string]string, len(verrs))
		for _, fe := range verrs {
			fields[fe.Field()] = fieldMessage(fe)
		}
		FailFields(c, http.StatusBadRequest, "Validation failed", fields)
		return
	}
	Fail(c, http.StatusBadRequest, "Invalid request body")
}

func fieldMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "This field is required."
	case "email":
		return "Must be a valid email address."
	case "url", "startswith":
		return "Must be a valid http or https URL."
	case "oneof":
		return "Must be one of: " + fe.Param() + "."
	case "min":
		return "Too small (minimum " + fe.Param() + ")."
	case "max":
		return "Too large (maximum " + fe.Param() + ")."
	default:
		return "Invalid value."
	}
}
