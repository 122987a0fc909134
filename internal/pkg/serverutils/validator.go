package serverutils

import (
	"fmt"
	"strings"

	"event-planner-be/internal/pkg/apperrors"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

// ValidateRequest checks the struct tags on a request body and folds all
// violations into a single validation error.
func ValidateRequest(req interface{}) error {
	err := validate.Struct(req)
	if err == nil {
		return nil
	}

	validationErrors, ok := err.(validator.ValidationErrors)
	if !ok {
		return apperrors.Validation("invalid request body")
	}

	var problems []string
	for _, fe := range validationErrors {
		problems = append(problems, fmt.Sprintf("%s failed on %s", fe.Field(), fe.Tag()))
	}
	return apperrors.Validation("%s", strings.Join(problems, "; "))
}
