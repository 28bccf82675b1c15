package validator

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

// ValidateStruct runs the struct's `validate` tags and flattens any
// violations into a single error suitable for user-facing output.
func ValidateStruct(s interface{}) error {
	err := validate.Struct(s)
	if err == nil {
		return nil
	}

	var errMsgs []string
	for _, fe := range err.(validator.ValidationErrors) {
		msg := fmt.Sprintf("field %s violates %q", fe.Field(), fe.Tag())
		if fe.Param() != "" {
			msg += fmt.Sprintf(" (param %s)", fe.Param())
		}
		errMsgs = append(errMsgs, msg)
	}
	return fmt.Errorf("validation failed: %s", strings.Join(errMsgs, "; "))
}
