package validator

import (
	"reflect"
	"regexp"
	"strings"
	"time"

	"hajj-guide/internal/domain/entity"
	"hajj-guide/internal/domain/errs"

	"github.com/go-playground/validator/v10"
)

var clockPattern = regexp.MustCompile(`^([01][0-9]|2[0-3]):[0-5][0-9]$`)

// Timestamp layouts accepted by the clocktime tag besides HH:MM.
var timestampLayouts = []string{
	time.RFC3339,
	"2006-01-02 15:04:05",
	"2006-01-02 15:04",
}

type CustomValidator struct {
	validator *validator.Validate
}

func NewValidator() *CustomValidator {
	v := validator.New(validator.WithRequiredStructEnabled())

	// Report fields by their json names so messages match the record shapes.
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" || name == "" {
			return fld.Name
		}
		return name
	})

	_ = v.RegisterValidation("bloodtype", oneOf(entity.BloodTypes))
	_ = v.RegisterValidation("transporttype", oneOf(entity.TransportTypes))
	_ = v.RegisterValidation("clocktime", validateClockTime)

	return &CustomValidator{
		validator: v,
	}
}

func (cv *CustomValidator) Validate(i interface{}) error {
	return cv.validator.Struct(i)
}

// Check validates i and converts failures into an *errs.ValidationError.
func (cv *CustomValidator) Check(i interface{}) error {
	if err := cv.Validate(i); err != nil {
		fields := cv.FormatValidationErrors(err)
		if len(fields) == 0 {
			fields = map[string]string{"input": err.Error()}
		}
		return errs.NewValidationError(fields)
	}
	return nil
}

func (cv *CustomValidator) FormatValidationErrors(err error) map[string]string {
	errors := make(map[string]string)

	if validationErrors, ok := err.(validator.ValidationErrors); ok {
		for _, e := range validationErrors {
			field := e.Field()
			switch e.Tag() {
			case "required":
				errors[field] = field + " is required"
			case "min":
				errors[field] = field + " must be at least " + e.Param() + " characters"
			case "max":
				errors[field] = field + " must be at most " + e.Param() + " characters"
			case "gt":
				errors[field] = field + " must be greater than " + e.Param()
			case "gte":
				errors[field] = field + " must be greater than or equal to " + e.Param()
			case "lte":
				errors[field] = field + " must be less than or equal to " + e.Param()
			case "bloodtype":
				errors[field] = field + " must be one of " + strings.Join(entity.BloodTypes, ", ")
			case "transporttype":
				errors[field] = field + " must be one of " + strings.Join(entity.TransportTypes, ", ")
			case "clocktime":
				errors[field] = field + " must be HH:MM or a timestamp"
			default:
				errors[field] = field + " is invalid"
			}
		}
	}

	return errors
}

func oneOf(allowed []string) validator.Func {
	return func(fl validator.FieldLevel) bool {
		value := fl.Field().String()
		for _, a := range allowed {
			if value == a {
				return true
			}
		}
		return false
	}
}

func validateClockTime(fl validator.FieldLevel) bool {
	value := strings.TrimSpace(fl.Field().String())
	if clockPattern.MatchString(value) {
		return true
	}
	for _, layout := range timestampLayouts {
		if _, err := time.Parse(layout, value); err == nil {
			return true
		}
	}
	return false
}
