package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/alexisbeaulieu97/headliner/internal/domain/headline"
	headlinererrors "github.com/alexisbeaulieu97/headliner/pkg/errors"
)

// ValidateConfig performs schema and cross-field validation on the configuration.
func ValidateConfig(cfg *Config) error {
	if cfg == nil {
		return headlinererrors.NewValidationError("config", "configuration is nil", nil)
	}

	v := validatorInstance()
	if err := v.Struct(cfg); err != nil {
		return convertValidationError(err)
	}

	table := cfg.FontTable()
	if !table.Has(cfg.Headline.FontFamily) {
		return headlinererrors.NewValidationError("headline.font_family",
			fmt.Sprintf("unknown font family %q (known: %s)", cfg.Headline.FontFamily, strings.Join(table.Keys(), ", ")), nil)
	}

	seen := make(map[string]int, len(cfg.Headline.Words))
	for i, word := range cfg.Headline.Words {
		normalized := headline.NormalizeWord(word.Text)
		if normalized == "" {
			return headlinererrors.NewValidationError(fieldForWord(i, "text"), "word must not be blank", nil)
		}
		if first, exists := seen[normalized]; exists {
			return headlinererrors.NewValidationError(fieldForWord(i, "text"),
				fmt.Sprintf("duplicate word %q (already declared at words[%d])", normalized, first), nil)
		}
		seen[normalized] = i
	}

	return nil
}

func convertValidationError(err error) error {
	if err == nil {
		return nil
	}

	var ves validator.ValidationErrors
	if errors.As(err, &ves) && len(ves) > 0 {
		ve := ves[0]
		field := yamlishFieldName(ve)
		msg := fmt.Sprintf("%s failed validation for tag '%s'", field, ve.Tag())
		if ve.Param() != "" {
			msg = fmt.Sprintf("%s (%s)", msg, ve.Param())
		}
		return headlinererrors.NewValidationError(field, msg, err)
	}

	return headlinererrors.NewValidationError("config", err.Error(), err)
}

// yamlishFieldName drops the root struct name from the namespace, which is
// already expressed in yaml key names.
func yamlishFieldName(fe validator.FieldError) string {
	ns := fe.Namespace()
	if idx := strings.Index(ns, "."); idx >= 0 {
		return ns[idx+1:]
	}
	return ns
}

func fieldForWord(index int, field string) string {
	return fmt.Sprintf("headline.words[%d].%s", index, field)
}
