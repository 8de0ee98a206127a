package headline

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDefaultsMatchWidgetInitialState(t *testing.T) {
	t.Parallel()

	s := Defaults()
	require.Equal(t, "Editable Headline", s.Text)
	require.Equal(t, 48, s.FontSize)
	require.Equal(t, "Roboto", s.FontFamily)
	require.Equal(t, 700, s.FontWeight)
	require.True(t, s.Gradient)
	require.Equal(t, DirectionRight, s.GradientDirection)
	require.Equal(t, Effects{FadeIn: true}, s.Effects)
	require.Empty(t, s.StyledWords)
}

func TestWithFontSizeInputRejectsBadValues(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name  string
		input string
		want  int
		err   bool
	}{
		{name: "valid", input: "72", want: 72},
		{name: "surrounding whitespace", input: " 12 ", want: 12},
		{name: "lower bound", input: "8", want: 8},
		{name: "upper bound", input: "200", want: 200},
		{name: "too large", input: "500", want: 48, err: true},
		{name: "too small", input: "7", want: 48, err: true},
		{name: "negative", input: "-10", want: 48, err: true},
		{name: "non numeric", input: "abc", want: 48, err: true},
		{name: "empty", input: "", want: 48, err: true},
		{name: "fraction", input: "12.5", want: 48, err: true},
	}

	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			s := Defaults()
			next, err := s.WithFontSizeInput(tc.input)
			require.Equal(t, tc.want, next.FontSize)
			if tc.err {
				require.ErrorIs(t, err, ErrInvalidNumericInput)
				require.Equal(t, s, next)
				return
			}
			require.NoError(t, err)
		})
	}
}

func TestWithFontWeight(t *testing.T) {
	t.Parallel()

	s := Defaults()
	for _, weight := range FontWeights {
		next, err := s.WithFontWeight(weight)
		require.NoError(t, err)
		require.Equal(t, weight, next.FontWeight)
	}

	next, err := s.WithFontWeight(500)
	require.ErrorIs(t, err, ErrInvalidFontWeight)
	require.Equal(t, s, next)
	require.Equal(t, "Semi Bold", FontWeightLabel(600))
	require.Equal(t, "500", FontWeightLabel(500))
}

func TestWithGradientDirection(t *testing.T) {
	t.Parallel()

	s := Defaults()
	next, err := s.WithGradientDirection(DirectionBottom)
	require.NoError(t, err)
	require.Equal(t, DirectionBottom, next.GradientDirection)

	same, err := s.WithGradientDirection(Direction("diagonal"))
	require.ErrorIs(t, err, ErrInvalidDirection)
	require.Equal(t, s, same)
}

func TestParseDirection(t *testing.T) {
	t.Parallel()

	d, err := ParseDirection(" TO-L ")
	require.NoError(t, err)
	require.Equal(t, DirectionLeft, d)

	_, err = ParseDirection("left")
	var domainErr *DomainError
	require.True(t, errors.As(err, &domainErr))
	require.Equal(t, ErrCodeInvalidDirection, domainErr.Code)
	require.Contains(t, err.Error(), `"left"`)

}

func TestEffectsExplicitFlags(t *testing.T) {
	t.Parallel()

	e := Effects{}
	for _, flag := range AllEffects {
		var err error
		e, err = e.With(flag, true)
		require.NoError(t, err)
		require.True(t, e.Enabled(flag))
	}
	require.Equal(t, AllEffects, e.Active())

	_, err := e.With(EffectFlag("spin"), true)
	require.ErrorIs(t, err, ErrInvalidEffect)

	flag, err := ParseEffectFlag("perletter")
	require.NoError(t, err)
	require.Equal(t, EffectPerLetter, flag)
}

func TestWithMethodsLeaveReceiverUntouched(t *testing.T) {
	t.Parallel()

	s := AddWord(Defaults(), "hello", NewSequentialIDs("w"))
	snapshot := s.Clone()

	_ = s.WithText("changed")
	_ = s.WithTextColor("#ffffff")
	_ = s.WithGradient(false)
	_, _ = s.WithEffect(EffectShadow, true)
	_ = ToggleStyle(s, s.StyledWords[0].ID, StyleHighlight)

	require.Equal(t, snapshot, s)
}

func TestSequentialIDsAreUnique(t *testing.T) {
	t.Parallel()

	ids := NewSequentialIDs("")
	seen := map[string]struct{}{}
	for i := 0; i < 1000; i++ {
		id := ids.NextID()
		_, dup := seen[id]
		require.False(t, dup)
		seen[id] = struct{}{}
	}

	random := RandomIDs{}
	require.Len(t, random.NextID(), 36)
	require.NotEqual(t, random.NextID(), random.NextID())
}
