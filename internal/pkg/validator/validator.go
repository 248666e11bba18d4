package validator

import (
	"camera-rental-service/internal/pkg/helpers"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
)

// New returns a validator with the custom rules used by request models:
//
//	decimal  positive decimal string ("100000", "99.5")
//	date     RFC3339 or YYYY-MM-DD
//	notpast  date not before the start of today (UTC)
func New() *validator.Validate {
	v := validator.New()
	_ = v.RegisterValidation("decimal", decimalRule)
	_ = v.RegisterValidation("date", dateRule)
	_ = v.RegisterValidation("notpast", notPastRule)
	return v
}

var decimalRule validator.Func = func(fl validator.FieldLevel) bool {
	d, err := decimal.NewFromString(fl.Field().String())
	if err != nil {
		return false
	}
	return d.IsPositive()
}

var dateRule validator.Func = func(fl validator.FieldLevel) bool {
	_, err := helpers.ParseDate(fl.Field().String())
	return err == nil
}

var notPastRule validator.Func = func(fl validator.FieldLevel) bool {
	d, err := helpers.ParseDate(fl.Field().String())
	if err != nil {
		return false
	}
	return !d.Before(helpers.StartOfDay(time.Now()))
}
