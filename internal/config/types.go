package config

import (
	"github.com/alexisbeaulieu97/headliner/internal/domain/headline"
)

// Config represents a headliner project file.
type Config struct {
	Version  string            `yaml:"version" toml:"version" validate:"required,semver"`
	Fonts    map[string]string `yaml:"fonts,omitempty" toml:"fonts,omitempty" validate:"omitempty,dive,keys,required,endkeys,required"`
	Headline Headline          `yaml:"headline" toml:"headline"`
	Export   Export            `yaml:"export,omitempty" toml:"export,omitempty"`
	Log      Log               `yaml:"log,omitempty" toml:"log,omitempty"`
}

// Headline holds the initial headline values. Omitted keys keep their defaults.
type Headline struct {
	Text              string  `yaml:"text" toml:"text"`
	FontSize          int     `yaml:"font_size" toml:"font_size" validate:"min=8,max=200"`
	TextColor         string  `yaml:"text_color" toml:"text_color" validate:"required,color"`
	FontFamily        string  `yaml:"font_family" toml:"font_family" validate:"required"`
	FontWeight        int     `yaml:"font_weight" toml:"font_weight" validate:"font_weight"`
	Gradient          bool    `yaml:"gradient" toml:"gradient"`
	GradientDirection string  `yaml:"gradient_direction" toml:"gradient_direction" validate:"direction"`
	GradientFrom      string  `yaml:"gradient_from" toml:"gradient_from" validate:"required,color"`
	GradientTo        string  `yaml:"gradient_to" toml:"gradient_to" validate:"required,color"`
	Effects           Effects `yaml:"effects" toml:"effects"`
	Words             []Word  `yaml:"words,omitempty" toml:"words,omitempty" validate:"omitempty,dive"`
}

// Effects mirrors headline.Effects.
type Effects struct {
	FadeIn    bool `yaml:"fade_in" toml:"fade_in"`
	HoverGlow bool `yaml:"hover_glow" toml:"hover_glow"`
	PerLetter bool `yaml:"per_letter" toml:"per_letter"`
	Shadow    bool `yaml:"shadow" toml:"shadow"`
}

// Word declares an initial per-word override.
type Word struct {
	Text      string `yaml:"text" toml:"text" validate:"required"`
	Highlight bool   `yaml:"highlight,omitempty" toml:"highlight,omitempty"`
	Underline bool   `yaml:"underline,omitempty" toml:"underline,omitempty"`
	Block     bool   `yaml:"block,omitempty" toml:"block,omitempty"`
}

// Export configures where artifacts are written.
type Export struct {
	Path string `yaml:"path,omitempty" toml:"path,omitempty"`
}

// Log configures logging.
type Log struct {
	Level string `yaml:"level,omitempty" toml:"level,omitempty" validate:"omitempty,oneof=trace debug info warn error"`
	Human *bool  `yaml:"human,omitempty" toml:"human,omitempty"`
}

// HumanReadable reports whether console-style logging was requested. It
// defaults to true.
func (l Log) HumanReadable() bool {
	if l.Human == nil {
		return true
	}
	return *l.Human
}

// Default returns a configuration equivalent to running without a file.
func Default() *Config {
	d := headline.Defaults()
	return &Config{
		Version: "1.0",
		Headline: Headline{
			Text:              d.Text,
			FontSize:          d.FontSize,
			TextColor:         d.TextColor,
			FontFamily:        d.FontFamily,
			FontWeight:        d.FontWeight,
			Gradient:          d.Gradient,
			GradientDirection: string(d.GradientDirection),
			GradientFrom:      d.GradientFrom,
			GradientTo:        d.GradientTo,
			Effects: Effects{
				FadeIn:    d.Effects.FadeIn,
				HoverGlow: d.Effects.HoverGlow,
				PerLetter: d.Effects.PerLetter,
				Shadow:    d.Effects.Shadow,
			},
		},
	}
}
