package validator

import (
	stderrors "errors"

	"github.com/go-playground/validator/v10"

	"github.com/eco-travel-service/internal/domain"
	"github.com/eco-travel-service/internal/pkg/errors"
)

var validate *validator.Validate

// BcryptMaxBytes - bcrypt учитывает не больше 72 байт пароля
const BcryptMaxBytes = 72

func init() {
	validate = validator.New()
	_ = validate.RegisterValidation("transport_mode", func(fl validator.FieldLevel) bool {
		_, ok := domain.ParseTransportMode(fl.Field().String())
		return ok
	})
	// max считает руны, а лимит bcrypt в байтах
	_ = validate.RegisterValidation("bcrypt_max", func(fl validator.FieldLevel) bool {
		return len(fl.Field().String()) <= BcryptMaxBytes
	})
}

// Validate - валидация структуры; ошибки полей возвращаются как INVALID_REQUEST с деталями
func Validate(s interface{}) error {
	err := validate.Struct(s)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !stderrors.As(err, &fieldErrs) {
		return errors.ErrInvalidRequest.WithMessage(err.Error())
	}

	details := make(map[string]interface{}, len(fieldErrs))
	for _, fe := range fieldErrs {
		details[fe.Field()] = fe.Tag()
	}
	return errors.ErrInvalidRequest.WithDetails(details)
}

// GetValidator - получить валидатор для кастомной конфигурации
func GetValidator() *validator.Validate {
	return validate
}
