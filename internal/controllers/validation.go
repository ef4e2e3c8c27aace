package controllers

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"reflect"
	"strconv"
	"strings"
	"sync"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"

	"storefront-be/internal/models"
)

var registerTagNameOnce sync.Once

// UseJSONFieldNames makes validation errors report JSON field names
// ("imageUrl") instead of Go struct field names ("ImageURL").
func UseJSONFieldNames() {
	registerTagNameOnce.Do(func() {
		v, ok := binding.Validator.Engine().(*validator.Validate)
		if !ok {
			return
		}
		v.RegisterTagNameFunc(func(field reflect.StructField) string {
			name, _, _ := strings.Cut(field.Tag.Get("json"), ",")
			if name == "-" {
				return ""
			}
			if name == "" {
				return field.Name
			}
			return name
		})
	})
}

// bindJSON decodes and validates the request body, returning the rejected
// fields when it fails
func bindJSON(c *gin.Context, dest interface{}) []models.ValidationIssue {
	if err := c.ShouldBindJSON(dest); err != nil {
		return validationIssues(err)
	}
	return nil
}

func validationIssues(err error) []models.ValidationIssue {
	var fieldErrs validator.ValidationErrors
	if errors.As(err, &fieldErrs) {
		issues := make([]models.ValidationIssue, 0, len(fieldErrs))
		for _, fe := range fieldErrs {
			issues = append(issues, models.ValidationIssue{
				Path:    fe.Field(),
				Message: fieldMessage(fe),
			})
		}
		return issues
	}

	var typeErr *json.UnmarshalTypeError
	if errors.As(err, &typeErr) {
		return []models.ValidationIssue{{
			Path:    typeErr.Field,
			Message: fmt.Sprintf("%s must be a %s", typeErr.Field, jsonTypeName(typeErr.Type.Kind())),
		}}
	}

	if errors.Is(err, io.EOF) {
		return []models.ValidationIssue{{Message: "Request body is required"}}
	}

	return []models.ValidationIssue{{Message: "Malformed JSON body"}}
}

func fieldMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return fe.Field() + " is required"
	case "email":
		return "Invalid email"
	case "min":
		if fe.Kind() == reflect.String {
			return fmt.Sprintf("%s must be at least %s characters", fe.Field(), fe.Param())
		}
		return fmt.Sprintf("%s must be at least %s", fe.Field(), fe.Param())
	case "gt":
		if n, err := strconv.ParseFloat(fe.Param(), 64); err == nil && n == 0 {
			return fe.Field() + " must be greater than zero"
		}
		return fmt.Sprintf("%s must be greater than %s", fe.Field(), fe.Param())
	default:
		return fe.Field() + " is invalid"
	}
}

func jsonTypeName(kind reflect.Kind) string {
	switch kind {
	case reflect.Float32, reflect.Float64,
		reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return "number"
	case reflect.Bool:
		return "boolean"
	case reflect.String:
		return "string"
	default:
		return "valid value"
	}
}
