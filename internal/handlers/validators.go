package handlers

import (
	"log/slog"
	"sync"

	"github.com/SscSPs/procurement_app/internal/utils/instant"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

var registerValidatorsOnce sync.Once

// registerValidators adds the custom binding tags used by the request DTOs.
func registerValidators() {
	registerValidatorsOnce.Do(func() {
		v, ok := binding.Validator.Engine().(*validator.Validate)
		if !ok {
			slog.Error("Gin validator engine is not go-playground/validator, custom tags unavailable")
			return
		}
		if err := v.RegisterValidation("rfc3339", func(fl validator.FieldLevel) bool {
			return instant.Valid(fl.Field().String())
		}); err != nil {
			slog.Error("Failed to register rfc3339 validator", slog.String("error", err.Error()))
		}
	})
}
