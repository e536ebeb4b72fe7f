package validator

import (
	"regexp"

	"github.com/go-playground/validator/v10"
)

var raceTimeRe = regexp.MustCompile(`^\d{2}:\d{2}:\d{2}$`)

func RegisterCustomValidations(validate *validator.Validate) {
	validate.RegisterValidation("racetime", validateRaceTime)
}

// racetime accepts "HH:MM:SS" or empty (the service defaults it).
func validateRaceTime(fl validator.FieldLevel) bool {
	v := fl.Field().String()
	if v == "" {
		return true
	}
	return raceTimeRe.MatchString(v)
}
