package dto

import (
	"fmt"

	"github.com/SscSPs/money_tracker/internal/core/domain"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

// RegisterValidators adds request-level rules to gin's validator engine.
func RegisterValidators() error {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return fmt.Errorf("unexpected validator engine %T", binding.Validator.Engine())
	}
	v.RegisterStructValidation(recurrenceRequestValidation, RecurrenceRequest{})
	return nil
}

func recurrenceRequestValidation(sl validator.StructLevel) {
	req := sl.Current().Interface().(RecurrenceRequest)
	if req.Type == domain.RecurrenceSpecificDay && req.Day == nil {
		sl.ReportError(req.Day, "Day", "day", "required_for_specific_day", "")
	}
}
