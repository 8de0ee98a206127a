package config

import (
	"reflect"
	"regexp"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"

	"github.com/alexisbeaulieu97/headliner/internal/domain/headline"
)

var (
	validatorOnce sync.Once
	validateInst  *validator.Validate

	semverPattern = regexp.MustCompile(`^\d+\.\d+(?:\.\d+)?(?:-[0-9A-Za-z-.]+)?(?:\+[0-9A-Za-z-.]+)?$`)
	colorPattern  = regexp.MustCompile(`^#(?:[0-9A-Fa-f]{3}|[0-9A-Fa-f]{6}|[0-9A-Fa-f]{8})$`)
)

// validatorInstance configures and returns the shared validator instance used across the config package.
func validatorInstance() *validator.Validate {
	validatorOnce.Do(func() {
		v := validator.New()

		v.RegisterTagNameFunc(func(field reflect.StructField) string {
			name := strings.SplitN(field.Tag.Get("yaml"), ",", 2)[0]
			if name == "-" {
				return ""
			}
			return name
		})

		_ = v.RegisterValidation("semver", func(fl validator.FieldLevel) bool {
			return semverPattern.MatchString(fl.Field().String())
		})

		_ = v.RegisterValidation("color", func(fl validator.FieldLevel) bool {
			return colorPattern.MatchString(fl.Field().String())
		})

		_ = v.RegisterValidation("direction", func(fl validator.FieldLevel) bool {
			return headline.Direction(fl.Field().String()).Valid()
		})

		_ = v.RegisterValidation("font_weight", func(fl validator.FieldLevel) bool {
			return headline.ValidFontWeight(int(fl.Field().Int()))
		})

		validateInst = v
	})

	return validateInst
}

// ValidColor reports whether value is a #rgb, #rrggbb or #rrggbbaa color.
func ValidColor(value string) bool {
	return colorPattern.MatchString(value)
}
