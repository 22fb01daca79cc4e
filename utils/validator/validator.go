package validatorx

import (
	"fmt"
	"sync"

	gpvalidator "github.com/go-playground/validator/v10"
	"github.com/muhammadheryan/restock/constant"
)

// ForecastModelTag accepts the forecast model names, case-insensitive.
const ForecastModelTag = "forecast_model"

var (
	v   *gpvalidator.Validate
	mut sync.Mutex
)

// Init initializes the validator singleton (idempotent)
func Init() {
	mut.Lock()
	defer mut.Unlock()
	if v != nil {
		return
	}
	v = gpvalidator.New()
	if err := v.RegisterValidation(ForecastModelTag, func(fl gpvalidator.FieldLevel) bool {
		_, ok := constant.ParseForecastModel(fl.Field().String())
		return ok
	}); err != nil {
		panic(fmt.Sprintf("register %s validation: %v", ForecastModelTag, err))
	}
}

// ValidateStruct validates a struct using go-playground/validator
func ValidateStruct(s interface{}) error {
	if v == nil {
		Init()
	}
	return v.Struct(s)
}
