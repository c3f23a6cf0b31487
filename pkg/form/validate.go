package form

import (
	"errors"
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"
)

var (
	ErrMissingFields = errors.New("missing required fields")
	ErrInvalidEmail  = errors.New("invalid email address")
)

// rejectionMessages is what the user sees for each validation error
var rejectionMessages = map[error]string{
	ErrMissingFields: "Please fill in all fields.",
	ErrInvalidEmail:  "Please enter a valid email address.",
}

// EmailPattern accepts local@domain.tld with no whitespace and exactly one @.
// The contact page script uses the same expression.
const EmailPattern = `^[^\s@]+@[^\s@]+\.[^\s@]+$`

var emailPattern = regexp.MustCompile(EmailPattern)

type contactInput struct {
	Name    string `validate:"required"`
	Email   string `validate:"required,basic_email"`
	Message string `validate:"required"`
}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	if err := v.RegisterValidation("basic_email", func(fl validator.FieldLevel) bool {
		return emailPattern.MatchString(fl.Field().String())
	}); err != nil {
		panic(err)
	}
	return v
}

// Validate trims the three fields and checks them. A missing field wins over
// a malformed email.
func Validate(name, email, message string) error {
	input := contactInput{
		Name:    strings.TrimSpace(name),
		Email:   strings.TrimSpace(email),
		Message: strings.TrimSpace(message),
	}

	err := validate.Struct(input)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return err
	}
	for _, fe := range fieldErrs {
		if fe.Tag() == "required" {
			return ErrMissingFields
		}
	}
	return ErrInvalidEmail
}
