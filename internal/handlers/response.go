package handlers

import (
	"net/http"
	"reflect"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"

	"github.com/huyquangvevo/vcs-hrms/internal/store"
)

func init() {
	// Report validation errors by json field name, not Go field name,
	// so form-driven clients can attribute them.
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		v.RegisterTagNameFunc(func(fld reflect.StructField) string {
			name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
			if name == "-" {
				return ""
			}
			return name
		})
	}
}

func fail(c *gin.Context, code int, message string) {
	c.JSON(code, gin.H{"success": false, "message": message})
}

func failFields(c *gin.Context, code int, message string, fields []store.FieldError) {
	c.JSON(code, gin.H{"success": false, "message": message, "errors": fields})
}

func validationFailed(c *gin.Context, err error) {
	failFields(c, http.StatusBadRequest, "Validation failed", bindingErrors(err))
}

// fieldMessages maps json field -> validator tag -> user-facing text.
var fieldMessages = map[string]map[string]string{
	"employee_id": {
		"required": "Employee ID is required",
		"min":      "Employee ID must be 2-20 characters",
		"max":      "Employee ID must be 2-20 characters",
	},
	"full_name": {
		"required": "Full name is required",
		"min":      "Full name must be 2-100 characters",
		"max":      "Full name must be 2-100 characters",
	},
	"email": {
		"required": "Email is required",
		"email":    "Invalid email format",
	},
	"department": {
		"required": "Department is required",
		"min":      "Department must be 2-50 characters",
		"max":      "Department must be 2-50 characters",
	},
	"date": {
		"required": "Date is required",
		"datetime": "Invalid date format (use YYYY-MM-DD)",
	},
	"status": {
		"required": "Status is required",
		"oneof":    `Status must be "Present" or "Absent"`,
	},
}

func bindingErrors(err error) []store.FieldError {
	ve, ok := err.(validator.ValidationErrors)
	if !ok {
		return []store.FieldError{{Field: "body", Message: "Invalid request body"}}
	}

	out := make([]store.FieldError, 0, len(ve))
	for _, fe := range ve {
		msg := fieldMessages[fe.Field()][fe.Tag()]
		if msg == "" {
			msg = "Invalid value"
		}
		out = append(out, store.FieldError{Field: fe.Field(), Message: msg})
	}
	return out
}
