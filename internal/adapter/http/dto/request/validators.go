package request

import (
	"fmt"
	"time"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"

	"fulfillment_service/internal/domain/entities"
)

// RegisterValidators adds the domain tags used by the request structs to gin's
// validator engine. It must run before the router serves traffic.
func RegisterValidators() error {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return fmt.Errorf("unexpected validator engine %T", binding.Validator.Engine())
	}
	return registerOn(v)
}

func registerOn(v *validator.Validate) error {
	rules := map[string]validator.Func{
		"payment_status": func(fl validator.FieldLevel) bool {
			_, err := entities.ParsePaymentStatus(fl.Field().String())
			return err == nil
		},
		"stage_status": func(fl validator.FieldLevel) bool {
			_, err := entities.ParseStageStatus(fl.Field().String())
			return err == nil
		},
		"ymd": func(fl validator.FieldLevel) bool {
			_, err := time.Parse(entities.DateLayout, fl.Field().String())
			return err == nil
		},
	}
	for tag, fn := range rules {
		if err := v.RegisterValidation(tag, fn); err != nil {
			return fmt.Errorf("registering %s validator: %w", tag, err)
		}
	}
	return nil
}
