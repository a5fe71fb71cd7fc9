package validation

import (
	"sync"

	"expansion/internal/domain"
	"github.com/go-playground/validator/v10"
)

var (
	once     sync.Once
	validate *validator.Validate
)

func instance() *validator.Validate {
	once.Do(func() {
		validate = validator.New(validator.WithRequiredStructEnabled())
		_ = validate.RegisterValidation("monthkey", func(fl validator.FieldLevel) bool {
			return IsMonthKey(fl.Field().String())
		})
		_ = validate.RegisterValidation("citystatus", func(fl validator.FieldLevel) bool {
			return domain.Status(fl.Field().String()).Valid()
		})
	})
	return validate
}

// Validate checks struct tags, including the custom "monthkey" and "citystatus" rules.
func Validate(data interface{}) error {
	return instance().Struct(data)
}

func IsMonthKey(raw string) bool {
	_, err := domain.ParseMonthKey(raw)
	return err == nil
}

// ValidateMonthKeys returns the first malformed key, wrapped in domain.ErrInvalidMonthKey.
func ValidateMonthKeys[V any](m map[domain.MonthKey]V) error {
	for key := range m {
		if _, err := domain.ParseMonthKey(string(key)); err != nil {
			return err
		}
	}
	return nil
}
