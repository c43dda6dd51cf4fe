package demo

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestGenerateIsDeterministic(t *testing.T) {
	a := Generate(42, 7)
	b := Generate(42, 7)
	require.Equal(t, a, b)
	require.NotEqual(t, a[0].Key, Generate(43, 7)[0].Key)
}

func TestGenerateDefaultCategories(t *testing.T) {
	cats := Generate(1, DefaultSections)
	require.Len(t, cats, 7)
	require.Equal(t, "Computers", cats[0].Name)
	require.Equal(t, "Books", cats[6].Name)

	keys := map[string]bool{}
	for _, c := range cats {
		require.GreaterOrEqual(t, c.Rows, MinSectionRows)
		require.LessOrEqual(t, c.Rows, MaxSectionRows)
		require.Len(t, c.Products, c.Rows-2)
		require.False(t, keys[c.Key], "duplicate key %s", c.Key)
		keys[c.Key] = true
	}
}

func TestGenerateClampsCount(t *testing.T) {
	require.Len(t, Generate(1, 0), 1)
	require.Len(t, Generate(1, 500), MaxSections)

	cats := Generate(1, 7+2*len(extraCategories))
	require.Equal(t, "Garden", cats[7].Name)
	require.Equal(t, "Garden 2", cats[7+len(extraCategories)].Name)
}

func TestIndexOfKey(t *testing.T) {
	cats := Generate(9, 3)
	require.Equal(t, 2, indexOfKey(cats, cats[2].Key))
	require.Equal(t, -1, indexOfKey(cats, "missing"))
}
