package dto

import (
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"

	"github.com/acadex/registry/internal/app/models"
)

// RegisterCustomValidations adds domain validations to gin's binding
// validator. Called once at startup.
func RegisterCustomValidations() error {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return nil
	}
	return v.RegisterValidation("gendercode", validGenderCode)
}

// validGenderCode accepts the gender codes the students table accepts.
func validGenderCode(fl validator.FieldLevel) bool {
	return models.ValidGender(fl.Field().String())
}
