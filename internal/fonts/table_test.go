package fonts

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLookup(t *testing.T) {
	t.Parallel()

	table := Default()

	value, ok := table.Lookup("Roboto")
	require.True(t, ok)
	require.Equal(t, "'Roboto', sans-serif", value)

	_, ok = table.Lookup("Nonexistent")
	require.False(t, ok)

	_, ok = Table{"Blank": ""}.Lookup("Blank")
	require.False(t, ok, "empty font strings must not resolve silently")
}

func TestKeysAreSorted(t *testing.T) {
	t.Parallel()

	require.Equal(t, []string{"Inter", "Lato", "OpenSans", "Poppins", "Roboto"}, Default().Keys())
}

func TestMergeDoesNotMutate(t *testing.T) {
	t.Parallel()

	base := Default()
	merged := base.Merge(Table{"Mono": "'JetBrains Mono', monospace", "Roboto": "Roboto"})

	require.Len(t, merged, 6)
	require.Equal(t, "Roboto", merged["Roboto"])
	require.Equal(t, "'Roboto', sans-serif", base["Roboto"])
}
