package validator

import (
	"log"

	"portfolio_backend/internal/models"

	"github.com/go-playground/validator/v10"
)

// registerCustomRules регистрирует правила для enum-полей моделей.
// Пустые значения проходят: для них есть 'required'.
func registerCustomRules(v *validator.Validate) {
	mustRegister := func(tag string, fn validator.Func) {
		if err := v.RegisterValidation(tag, fn); err != nil {
			log.Fatalf("failed to register custom validation tag '%s': %v", tag, err)
		}
	}

	mustRegister("is-experience-kind", enumRule(func(s string) bool {
		return models.ExperienceKind(s).Valid()
	}))
	mustRegister("is-proficiency", enumRule(func(s string) bool {
		return models.Proficiency(s).Valid()
	}))
	mustRegister("is-degree-level", enumRule(func(s string) bool {
		return models.DegreeLevel(s).Valid()
	}))
	mustRegister("is-project-status", enumRule(func(s string) bool {
		return models.ProjectStatus(s).Valid()
	}))
}

func enumRule(valid func(string) bool) validator.Func {
	return func(fl validator.FieldLevel) bool {
		value := fl.Field().String()
		if value == "" {
			return true
		}
		return valid(value)
	}
}
