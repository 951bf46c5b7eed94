// Package predicate_test contains unit tests for ValueSet.
package predicate_test

import (
	"testing"

	"github.com/katalvlaran/predicatesearch/predicate"
	"github.com/stretchr/testify/require"
)

func TestValueSetNewDeduplicates(t *testing.T) {
	t.Parallel()

	s := predicate.NewValueSet(predicate.StrValue("x"), predicate.StrValue("x"), predicate.StrValue("y"))
	require.Equal(t, 2, s.Len())
	require.True(t, s.Contains(predicate.StrValue("x")))
	require.True(t, s.Contains(predicate.StrValue("y")))
	require.False(t, s.Contains(predicate.StrValue("z")))
}

func TestValueSetIntAndStrNeverCollide(t *testing.T) {
	t.Parallel()

	s := predicate.NewValueSet(predicate.IntValue(1), predicate.StrValue("1"))
	require.Equal(t, 2, s.Len())
}

func TestValueSetUnion(t *testing.T) {
	t.Parallel()

	a := predicate.NewValueSet(predicate.StrValue("x"), predicate.StrValue("y"))
	b := predicate.NewValueSet(predicate.StrValue("y"), predicate.StrValue("z"))

	u := a.Union(b)
	require.Equal(t, 3, u.Len())
	for _, v := range []string{"x", "y", "z"} {
		require.True(t, u.Contains(predicate.StrValue(v)))
	}
}

func TestValueSetSubsetAndEqual(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		a, b       predicate.ValueSet
		wantSubset bool
		wantEqual  bool
	}{
		{
			name:       "equal sets",
			a:          predicate.NewValueSet(predicate.StrValue("x"), predicate.StrValue("y")),
			b:          predicate.NewValueSet(predicate.StrValue("y"), predicate.StrValue("x")),
			wantSubset: true,
			wantEqual:  true,
		},
		{
			name:       "proper subset",
			a:          predicate.NewValueSet(predicate.StrValue("x")),
			b:          predicate.NewValueSet(predicate.StrValue("x"), predicate.StrValue("y")),
			wantSubset: true,
			wantEqual:  false,
		},
		{
			name:       "disjoint",
			a:          predicate.NewValueSet(predicate.StrValue("z")),
			b:          predicate.NewValueSet(predicate.StrValue("x"), predicate.StrValue("y")),
			wantSubset: false,
			wantEqual:  false,
		},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			require.Equal(t, tc.wantSubset, tc.a.Subset(tc.b))
			require.Equal(t, tc.wantEqual, tc.a.Equal(tc.b))
		})
	}
}

func TestValueSetValuesSortedDeterministically(t *testing.T) {
	t.Parallel()

	s := predicate.NewValueSet(predicate.IntValue(3), predicate.IntValue(1), predicate.IntValue(2))
	got := s.Values()
	require.Len(t, got, 3)
	require.Equal(t, []predicate.Value{
		predicate.IntValue(1), predicate.IntValue(2), predicate.IntValue(3),
	}, got)

	strs := predicate.NewValueSet(predicate.StrValue("b"), predicate.StrValue("a"), predicate.StrValue("c"))
	gotStrs := strs.Values()
	require.Equal(t, []predicate.Value{
		predicate.StrValue("a"), predicate.StrValue("b"), predicate.StrValue("c"),
	}, gotStrs)
}
