package forum

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/iryswiki/iryswiki/internal/domain"
)

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	_ = v.RegisterValidation("category", func(fl validator.FieldLevel) bool {
		return domain.IsValidCategory(domain.Category(fl.Field().String()))
	})
	return v
}

// validateInput runs the struct tags of input and reports the failing fields
func (f *forum) validateInput(input interface{}) error {
	err := f.validate.Struct(input)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return fmt.Errorf("%w: %v", domain.ErrInvalidInput, err)
	}

	fields := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		fields = append(fields, fmt.Sprintf("%s failed on %s", fe.Field(), fe.Tag()))
	}
	return fmt.Errorf("%w: %s", domain.ErrInvalidInput, strings.Join(fields, ", "))
}

// trimThread strips surrounding whitespace so blank values fail required
func trimThread(input domain.NewThread) domain.NewThread {
	input.Title = strings.TrimSpace(input.Title)
	input.Content = strings.TrimSpace(input.Content)
	input.Category = domain.Category(strings.ToLower(strings.TrimSpace(string(input.Category))))
	return input
}

func trimReply(input domain.NewReply) domain.NewReply {
	input.Content = strings.TrimSpace(input.Content)
	return input
}

func trimProfile(input domain.ProfileInput) domain.ProfileInput {
	input.Username = strings.TrimSpace(input.Username)
	input.Bio = strings.TrimSpace(input.Bio)
	input.AvatarURL = strings.TrimSpace(input.AvatarURL)
	return input
}
