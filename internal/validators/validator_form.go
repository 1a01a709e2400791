package validators

import (
	"context"
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	nonstandard "github.com/go-playground/validator/v10/non-standard/validators"
)

// fieldMessages overrides the generic text for rules whose wording users
// already know from the shop's web forms. Keyed by "Struct.Field.tag".
var fieldMessages = map[string]string{
	"RegisterRequest.Username.required":       "Username is required",
	"RegisterRequest.Username.notblank":       "Username is required",
	"RegisterRequest.FullName.required":       "Full name is required",
	"RegisterRequest.FullName.notblank":       "Full name is required",
	"RegisterRequest.Email.required":          "Email is required",
	"RegisterRequest.Email.email":             "Email must be a valid email address",
	"RegisterRequest.Password.required":       "Password must be at least 6 characters",
	"RegisterRequest.Password.min":            "Password must be at least 6 characters",
	"RegisterRequest.ConfirmPassword.eqfield": "Passwords do not match",
	"LoginRequest.Username.required":          "Username is required",
	"LoginRequest.Username.notblank":          "Username is required",
	"LoginRequest.Password.required":          "Password is required",
	"CreateSweetRequest.Name.required":        "Name is required",
	"CreateSweetRequest.Name.notblank":        "Name is required",
	"CreateSweetRequest.Price.gt":             "Price must be a positive number",
	"CreateSweetRequest.Quantity.gte":         "Quantity must be 0 or more",
	"UpdateSweetRequest.Name.notblank":        "Name is required",
	"UpdateSweetRequest.Price.gt":             "Price must be a positive number",
	"RestockRequest.Quantity.gt":              "Quantity must be a positive number",
	"RestockRequest.SweetID.gt":               "Select a sweet to restock",
}

type formValidator struct {
	validate *validator.Validate
}

// NewFormValidator builds the [Validator] for the request models.
func NewFormValidator() Validator {
	v := validator.New(validator.WithRequiredStructEnabled())

	// notblank: the value must not be whitespace only
	_ = v.RegisterValidation("notblank", nonstandard.NotBlank)

	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "" || name == "-" {
			return fld.Name
		}
		return name
	})

	return &formValidator{validate: v}
}

func (f *formValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	var err error
	if len(fields) > 0 {
		err = f.validate.StructPartialCtx(ctx, obj, fields...)
	} else {
		err = f.validate.StructCtx(ctx, obj)
	}
	if err == nil {
		return nil
	}

	var invalid *validator.InvalidValidationError
	if errors.As(err, &invalid) {
		return fmt.Errorf("%w: %T", ErrUnsupportedType, obj)
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return fmt.Errorf("%w: %w", ErrValidation, err)
	}

	issues := make([]FieldIssue, 0, len(fieldErrs))
	for _, fe := range fieldErrs {
		issues = append(issues, FieldIssue{
			Field:   fe.Field(),
			Message: formatValidationError(fe),
		})
	}
	return &ValidationError{Issues: issues}
}

// formatValidationError converts a validator FieldError to a user-friendly message
func formatValidationError(fe validator.FieldError) string {
	if msg, ok := fieldMessages[fe.StructNamespace()+"."+fe.Tag()]; ok {
		return msg
	}

	field := fe.Field()
	switch fe.Tag() {
	case "required", "notblank":
		return field + " is required"
	case "email":
		return field + " must be a valid email address"
	case "min":
		return fmt.Sprintf("%s must have a minimum of %s characters", field, fe.Param())
	case "gt":
		return fmt.Sprintf("%s must be greater than %s", field, fe.Param())
	case "gte":
		return fmt.Sprintf("%s must be greater than or equal to %s", field, fe.Param())
	case "eqfield":
		return fmt.Sprintf("%s must match %s", field, fe.Param())
	default:
		return fmt.Sprintf("%s failed validation: %s", field, fe.Tag())
	}
}
