package httpmodel

import (
	"fmt"
	"reflect"
	"strings"

	"github.com/batchrecords/rqs/internal/model"
	"github.com/go-playground/validator/v10"
)

// Define a single validator to do all of the validations for us. Field names
// in validation failures are reported using the JSON tag so that callers see
// the names they sent.
var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(field reflect.StructField) string {
		name := strings.SplitN(field.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// SettingUpdate is the request body for updating a role's storage setting.
//
// swagger:model
type SettingUpdate struct {
	// The maximum number of records the role may store
	//
	// required: true
	TotalRecordLimit int64 `json:"total_record_limit" validate:"required,gte=1000,lte=10000000"`

	// A brief description of the setting
	//
	// required: true
	Description string `json:"description" validate:"required,min=10,max=500"`
}

// Validate checks the field constraints, returning one FieldError per
// violation. A nil result means the body is acceptable. Handlers must reject
// the request before any database mutation when this returns failures.
func (s SettingUpdate) Validate() []model.FieldError {
	err := validate.Struct(s)
	if err == nil {
		return nil
	}

	violations, ok := err.(validator.ValidationErrors)
	if !ok {
		return []model.FieldError{{Field: "", Message: err.Error()}}
	}

	fields := make([]model.FieldError, 0, len(violations))
	for _, violation := range violations {
		fields = append(fields, model.FieldError{
			Field:   violation.Field(),
			Message: describeViolation(violation),
		})
	}
	return fields
}

// describeViolation produces a caller-facing message for a field failure.
func describeViolation(violation validator.FieldError) string {
	switch violation.Tag() {
	case "required":
		return "a value is required"
	case "gte":
		return fmt.Sprintf("must be at least %s", violation.Param())
	case "lte":
		return fmt.Sprintf("must be at most %s", violation.Param())
	case "min":
		return fmt.Sprintf("must be at least %s characters long", violation.Param())
	case "max":
		return fmt.Sprintf("must be at most %s characters long", violation.Param())
	default:
		return fmt.Sprintf("failed the '%s' constraint", violation.Tag())
	}
}

// ToDBModel converts the request body to its equivalent database model. The
// saved setting is always forced active.
func (s SettingUpdate) ToDBModel(role model.Role, actingUserID string) model.StorageSetting {
	return model.StorageSetting{
		Role:             role,
		TotalRecordLimit: s.TotalRecordLimit,
		Description:      s.Description,
		IsActive:         true,
		UpdatedByID:      &actingUserID,
	}
}
