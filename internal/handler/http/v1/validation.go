package v1

import (
	"github.com/go-playground/validator/v10"
	"github.com/shenikar/incident_dispatch/internal/models"
)

// newValidator регистрирует теги для перечислений предметной области.
// Пустая строка допустима: обязательность задается тегом required.
func newValidator() *validator.Validate {
	v := validator.New()
	mustRegister(v, "incident_type", func(s string) bool { return models.IncidentType(s).Valid() })
	mustRegister(v, "severity", func(s string) bool { return models.Severity(s).Valid() })
	mustRegister(v, "status", func(s string) bool { return models.Status(s).Valid() })
	mustRegister(v, "time_range", func(s string) bool {
		switch models.TimeRange(s) {
		case models.TimeRangeHour, models.TimeRangeSixHours, models.TimeRangeDay, models.TimeRangeWeek, models.TimeRangeAll:
			return true
		}
		return false
	})
	return v
}

func mustRegister(v *validator.Validate, tag string, valid func(string) bool) {
	err := v.RegisterValidation(tag, func(fl validator.FieldLevel) bool {
		s := fl.Field().String()
		return s == "" || valid(s)
	})
	if err != nil {
		panic(err)
	}
}
