package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/alexisbeaulieu97/headliner/internal/domain/headline"
	headlinererrors "github.com/alexisbeaulieu97/headliner/pkg/errors"
)

func TestParseConfig(t *testing.T) {
	t.Parallel()

	validYAML := `version: "1.0"
fonts:
  Mono: "'JetBrains Mono', monospace"
headline:
  text: "Hello world"
  font_size: 64
  font_family: Mono
  gradient: false
  text_color: "#112233"
  effects:
    per_letter: true
  words:
    - text: World
      highlight: true
export:
  path: out/headline.json
log:
  level: debug
  human: false
`

	validTOML := `version = "1.0"

[headline]
text = "Hello toml"
font_weight = 900
gradient_direction = "to-b"

[[headline.words]]
text = "toml"
block = true
`

	invalidYAML := `version: [1, 0]
headline:
  text: broken
`

	unknownKey := `version: "1.0"
headline:
  colour: "#fff"
`

	cases := []struct {
		name     string
		file     string
		contents string
		assert   func(t *testing.T, cfg *Config, err error)
	}{
		{
			name:     "yaml overlays defaults",
			file:     "headline.yaml",
			contents: validYAML,
			assert: func(t *testing.T, cfg *Config, err error) {
				require.NoError(t, err)
				require.Equal(t, "Hello world", cfg.Headline.Text)
				require.Equal(t, 64, cfg.Headline.FontSize)
				require.Equal(t, 700, cfg.Headline.FontWeight, "unset keys keep defaults")
				require.False(t, cfg.Headline.Gradient)
				require.True(t, cfg.Headline.Effects.PerLetter)
				require.True(t, cfg.Headline.Effects.FadeIn)
				require.Equal(t, "out/headline.json", cfg.Export.Path)
				require.Equal(t, "debug", cfg.Log.Level)
				require.False(t, cfg.Log.HumanReadable())
				require.Equal(t, "'JetBrains Mono', monospace", cfg.FontTable()["Mono"])
				require.Len(t, cfg.FontTable(), 6)
			},
		},
		{
			name:     "toml overlays defaults",
			file:     "headline.toml",
			contents: validTOML,
			assert: func(t *testing.T, cfg *Config, err error) {
				require.NoError(t, err)
				require.Equal(t, "Hello toml", cfg.Headline.Text)
				require.Equal(t, 900, cfg.Headline.FontWeight)
				require.Equal(t, "to-b", cfg.Headline.GradientDirection)
				require.Equal(t, 48, cfg.Headline.FontSize)
				require.Len(t, cfg.Headline.Words, 1)
				require.True(t, cfg.Headline.Words[0].Block)
				require.True(t, cfg.Log.HumanReadable())
			},
		},
		{
			name:     "empty yaml yields defaults",
			file:     "empty.yml",
			contents: "",
			assert: func(t *testing.T, cfg *Config, err error) {
				require.NoError(t, err)
				require.Equal(t, Default(), cfg)
			},
		},
		{
			name:     "invalid yaml returns parse error with line",
			file:     "broken.yaml",
			contents: invalidYAML,
			assert: func(t *testing.T, cfg *Config, err error) {
				require.Nil(t, cfg)
				var parseErr *headlinererrors.ParseError
				require.ErrorAs(t, err, &parseErr)
				require.Equal(t, 1, parseErr.Line)
			},
		},
		{
			name:     "unknown keys are rejected",
			file:     "unknown.yaml",
			contents: unknownKey,
			assert: func(t *testing.T, cfg *Config, err error) {
				var parseErr *headlinererrors.ParseError
				require.ErrorAs(t, err, &parseErr)
				require.Contains(t, parseErr.Message, "colour")
			},
		},
		{
			name:     "unsupported extension",
			file:     "headline.json",
			contents: "{}",
			assert: func(t *testing.T, cfg *Config, err error) {
				var parseErr *headlinererrors.ParseError
				require.ErrorAs(t, err, &parseErr)
				require.Contains(t, parseErr.Message, "unsupported config extension")
			},
		},
	}

	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			path := writeTempConfig(t, tc.file, tc.contents)
			cfg, err := ParseConfig(path)
			tc.assert(t, cfg, err)
		})
	}
}

func TestParseConfigMissingFile(t *testing.T) {
	t.Parallel()

	_, err := ParseConfig(filepath.Join(t.TempDir(), "missing.yaml"))
	var parseErr *headlinererrors.ParseError
	require.ErrorAs(t, err, &parseErr)
	require.Zero(t, parseErr.Line)
}

func TestConfigSettingsAppliesWords(t *testing.T) {
	t.Parallel()

	cfg := Default()
	cfg.Headline.Words = []Word{
		{Text: "Hello", Highlight: true, Underline: true},
		{Text: "world"},
	}

	s := cfg.Settings(headline.NewSequentialIDs("w"))
	require.Equal(t, []headline.StyledWord{
		{ID: "w1", Text: "hello", Highlight: true, Underline: true},
		{ID: "w2", Text: "world"},
	}, s.StyledWords)

	expected := headline.Defaults()
	s.StyledWords = nil
	require.Equal(t, expected, s)
}

func writeTempConfig(t *testing.T, name, contents string) string {
	t.Helper()

	dir := t.TempDir()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(contents), 0o600))
	return path
}
