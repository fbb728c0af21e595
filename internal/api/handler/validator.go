package handler

import (
	"errors"
	"fmt"
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"
)

var (
	personNameRe = regexp.MustCompile(`^[a-zA-Z\s'-]+$`)
	phoneCharsRe = regexp.MustCompile(`^[0-9+\s()-]+$`)
	scriptyRe    = regexp.MustCompile(`(?i)<script|javascript:|on\w+=`)
)

// ValidationError carries field-level failure messages so the error handler
// can render a 400 with details.
type ValidationError struct {
	Details []string
}

func (e *ValidationError) Error() string {
	return strings.Join(e.Details, "; ")
}

// echoValidator wraps go-playground/validator so Echo can call c.Validate(req).
type echoValidator struct {
	v *validator.Validate
}

// NewValidator returns an echoValidator ready to be assigned to
// echo.Echo.Validator. It registers the contact-form rules:
//
//	person_name  letters, spaces, hyphens, apostrophes only
//	phone_chars  digits, +, -, (, ), spaces only
//	safe_text    rejects <script, javascript: and on<word>= patterns outright
func NewValidator() *echoValidator {
	v := validator.New()
	_ = v.RegisterValidation("person_name", func(fl validator.FieldLevel) bool {
		return personNameRe.MatchString(fl.Field().String())
	})
	_ = v.RegisterValidation("phone_chars", func(fl validator.FieldLevel) bool {
		return phoneCharsRe.MatchString(fl.Field().String())
	})
	_ = v.RegisterValidation("safe_text", func(fl validator.FieldLevel) bool {
		return !scriptyRe.MatchString(fl.Field().String())
	})
	return &echoValidator{v: v}
}

// Validate satisfies the echo.Validator interface.
func (ev *echoValidator) Validate(i any) error {
	if err := ev.v.Struct(i); err != nil {
		var ve validator.ValidationErrors
		if errors.As(err, &ve) {
			msgs := make([]string, 0, len(ve))
			for _, fe := range ve {
				msgs = append(msgs, fieldError(fe))
			}
			return &ValidationError{Details: msgs}
		}
		return err
	}
	return nil
}

// fieldError converts a single ValidationError into a human-readable message.
func fieldError(fe validator.FieldError) string {
	field := strings.ToLower(fe.Field())
	switch fe.Tag() {
	case "required":
		return field + " is required"
	case "email":
		return field + " must be a valid email"
	case "min":
		return fmt.Sprintf("%s must be at least %s characters", field, fe.Param())
	case "max":
		return fmt.Sprintf("%s must not exceed %s characters", field, fe.Param())
	case "oneof":
		return fmt.Sprintf("%s must be one of: %s", field, fe.Param())
	case "person_name":
		return field + " can only contain letters, spaces, hyphens, and apostrophes"
	case "phone_chars":
		return field + " can only contain numbers, +, -, (, ), and spaces"
	case "safe_text":
		return field + " contains invalid content"
	default:
		return fmt.Sprintf("%s failed validation (%s)", field, fe.Tag())
	}
}
