package validation

import (
	"errors"
	"reflect"
	"strings"

	"cdms/internal/models"

	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
)

// Validator wraps the go-playground validator with custom rules and error formatting
type Validator struct {
	validate *validator.Validate
}

// GetValidate returns the underlying validator.Validate instance
func (v *Validator) GetValidate() *validator.Validate {
	return v.validate
}

// singleton instance of the validator
var instance *Validator

// GetValidator returns the singleton validator instance
func GetValidator() *Validator {
	if instance == nil {
		instance = NewValidator()
	}
	return instance
}

// NewValidator creates a new validator instance with custom rules and configuration
func NewValidator() *Validator {
	v := validator.New()

	_ = v.RegisterValidation("customer_email", validateCustomerEmail)
	_ = v.RegisterValidation("phone_digits", validatePhoneDigits)
	_ = v.RegisterValidation("purchase_amount", validatePurchaseAmount)
	_ = v.RegisterValidation("purchase_amount_max", validatePurchaseAmountMax)

	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	return &Validator{validate: v}
}

// ValidateStruct validates s and returns a map of field name to message.
// A nil map means s is valid. Errors that are not field failures (for
// example a nil pointer) are returned as the second value.
func (v *Validator) ValidateStruct(s interface{}) (map[string]string, error) {
	err := v.validate.Struct(s)
	if err == nil {
		return nil, nil
	}

	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		return nil, err
	}

	fieldErrors := make(map[string]string, len(validationErrors))
	for _, fe := range validationErrors {
		fieldErrors[fe.Field()] = messageFor(fe)
	}
	return fieldErrors, nil
}

func messageFor(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "customer_email":
		return "must look like local@domain.tld"
	case "phone_digits":
		return "must be exactly 10 digits"
	case "purchase_amount":
		return "must be a non-negative decimal number such as 120.50"
	case "purchase_amount_max":
		return "must be at most " + models.MaxPurchaseAmount.StringFixed(2)
	case "max":
		return "must be at most " + fe.Param() + " characters"
	default:
		return "is invalid"
	}
}

// Custom validation functions

// validateCustomerEmail validates the local@domain.tld shape
func validateCustomerEmail(fl validator.FieldLevel) bool {
	return models.EmailPattern.MatchString(fl.Field().String())
}

// validatePhoneDigits validates that a phone number is exactly 10 digits
func validatePhoneDigits(fl validator.FieldLevel) bool {
	return models.PhonePattern.MatchString(fl.Field().String())
}

// validatePurchaseAmount validates plain non-negative decimal notation
func validatePurchaseAmount(fl validator.FieldLevel) bool {
	return models.AmountPattern.MatchString(strings.TrimSpace(fl.Field().String()))
}

// validatePurchaseAmountMax validates that the amount, rounded to cents as it
// is stored, fits the column
func validatePurchaseAmountMax(fl validator.FieldLevel) bool {
	amount, err := decimal.NewFromString(strings.TrimSpace(fl.Field().String()))
	if err != nil {
		return false
	}
	return !amount.Round(2).GreaterThan(models.MaxPurchaseAmount)
}
