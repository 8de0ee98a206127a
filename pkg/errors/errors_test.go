package errors

import (
	stdErrors "errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseErrorWrapsUnderlying(t *testing.T) {
	t.Parallel()

	underlying := fmt.Errorf("unexpected token")
	err := NewParseError("headline.yaml", 12, underlying)

	var parseErr *ParseError
	require.ErrorAs(t, err, &parseErr)
	require.Equal(t, "headline.yaml", parseErr.Path)
	require.Equal(t, 12, parseErr.Line)
	require.True(t, stdErrors.Is(err, underlying))
	require.Equal(t, "parse error: headline.yaml:12: unexpected token", err.Error())
}

func TestParseErrorWithoutLine(t *testing.T) {
	t.Parallel()

	err := NewParseError("headline.toml", 0, stdErrors.New("boom"))
	require.Equal(t, "parse error: headline.toml: boom", err.Error())
}

func TestValidationErrorIncludesField(t *testing.T) {
	t.Parallel()

	err := NewValidationError("headline.font_size", "must be between 8 and 200", nil)

	var validationErr *ValidationError
	require.ErrorAs(t, err, &validationErr)
	require.Equal(t, "headline.font_size", validationErr.Field)
	require.Contains(t, err.Error(), "must be between 8 and 200")

	require.Equal(t, "validation error: bad", NewValidationError("", "bad", nil).Error())
}

func TestExportErrorIncludesPath(t *testing.T) {
	t.Parallel()

	underlying := stdErrors.New("permission denied")
	err := NewExportError("/tmp/headline-widget", underlying)

	var exportErr *ExportError
	require.ErrorAs(t, err, &exportErr)
	require.Equal(t, "/tmp/headline-widget", exportErr.Path)
	require.True(t, stdErrors.Is(err, underlying))
	require.Contains(t, err.Error(), "/tmp/headline-widget")
}

func TestWordSpecErrorColumn(t *testing.T) {
	t.Parallel()

	err := NewWordSpecError(7, "unexpected token", nil)
	require.Equal(t, "word override error at column 7: unexpected token", err.Error())
	require.Equal(t, "word override error: empty", NewWordSpecError(0, "empty", nil).Error())
}

func TestNilReceiversAreSafe(t *testing.T) {
	t.Parallel()

	var parseErr *ParseError
	var validationErr *ValidationError
	var exportErr *ExportError
	var specErr *WordSpecError

	require.Empty(t, parseErr.Error())
	require.Nil(t, parseErr.Unwrap())
	require.Empty(t, validationErr.Error())
	require.Nil(t, exportErr.Unwrap())
	require.Empty(t, specErr.Error())
}
