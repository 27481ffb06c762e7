package serverutils

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"

	"notes-api-be/internal/pkg/apperror"
)

var validate = validator.New()

// ValidateRequest runs struct tag validation and reports failures as a single
// InvalidArgument error.
func ValidateRequest(req interface{}) error {
	if err := validate.Struct(req); err != nil {
		var invalid validator.ValidationErrors
		if errors.As(err, &invalid) {
			fields := make([]string, 0, len(invalid))
			for _, fe := range invalid {
				fields = append(fields, fmt.Sprintf("%s (%s)", fe.Field(), fe.Tag()))
			}
			return apperror.NewInvalidArgument("validation failed: " + strings.Join(fields, ", "))
		}
		return apperror.NewInvalidArgument("validation failed")
	}
	return nil
}
