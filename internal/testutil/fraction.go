package testutil

import (
	"testing"

	"github.com/chaisql/rational"
	"github.com/chaisql/rational/integer"
	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"
)

// ParseFraction parses s and fails the test if it's invalid.
func ParseFraction[T integer.Integer[T]](t testing.TB, s string) rational.Fraction[T] {
	t.Helper()

	f, err := rational.Parse[T](s)
	require.NoError(t, err, "cannot parse %q", s)
	return f
}

// ParseFractions parses each element of list.
func ParseFractions[T integer.Integer[T]](t testing.TB, list ...string) []rational.Fraction[T] {
	t.Helper()

	fs := make([]rational.Fraction[T], len(list))
	for i, s := range list {
		fs[i] = ParseFraction[T](t, s)
	}
	return fs
}

// I8 returns a/b as a fraction of int8. It fails the test if b is zero.
func I8(t testing.TB, a, b int8) rational.Fraction[integer.Int8] {
	t.Helper()

	f, err := rational.New(integer.NewFixed(a), integer.NewFixed(b))
	require.NoError(t, err)
	return f
}

// I64 returns a/b as a fraction of int64. It fails the test if b is zero.
func I64(t testing.TB, a, b int64) rational.Fraction[integer.Int64] {
	t.Helper()

	f, err := rational.New(integer.NewFixed(a), integer.NewFixed(b))
	require.NoError(t, err)
	return f
}

// Comparer is a cmp option that compares fractions by value,
// so that 1/2 and 2/4 are equal.
func Comparer[T integer.Integer[T]]() cmp.Option {
	return cmp.Comparer(func(a, b rational.Fraction[T]) bool {
		ok, err := a.EQ(b)
		return err == nil && ok
	})
}

// RequireEqual fails the test if want and got don't represent the same number.
func RequireEqual[T integer.Integer[T]](t testing.TB, want, got rational.Fraction[T]) {
	t.Helper()

	ok, err := want.EQ(got)
	require.NoError(t, err)
	require.True(t, ok, "expected %s, got %s", want, got)
}

// RequireDiff fails the test if want and got differ by value.
func RequireDiff[T integer.Integer[T]](t testing.TB, want, got []rational.Fraction[T]) {
	t.Helper()

	if diff := cmp.Diff(want, got, Comparer[T]()); diff != "" {
		require.Failf(t, "fractions mismatch", "(-want +got):\n%s", diff)
	}
}
