package handler

import (
	"github.com/JSharma2K/cofounded/internal/domain"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

// RegisterValidators installs the custom binding tags used by request
// structs. Must run before the first request is bound.
func RegisterValidators() {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return
	}
	v.RegisterValidation("ageband", func(fl validator.FieldLevel) bool {
		return domain.AgeBand(fl.Field().String()).IsValid()
	})
	v.RegisterValidation("stage", func(fl validator.FieldLevel) bool {
		return domain.Stage(fl.Field().String()).IsValid()
	})
}
