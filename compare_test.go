package rational_test

import (
	"testing"

	"github.com/chaisql/rational"
	"github.com/chaisql/rational/integer"
	"github.com/chaisql/rational/internal/testutil"
	"github.com/chaisql/rational/internal/testutil/assert"
	"github.com/stretchr/testify/require"
)

func TestCompare(t *testing.T) {
	tests := []struct {
		a, b string
		want int
	}{
		{"1/2", "2/4", 0},
		{"1/3", "1/2", -1},
		{"1/2", "1/3", 1},
		{"-1/2", "1/3", -1},
		{"-1/2", "-1/3", -1},
		{"0/1", "0/7", 0},
		{"-3/1", "-6/2", 0},
		{"7/3", "2/1", 1},
	}

	for _, test := range tests {
		t.Run(test.a+" "+test.b, func(t *testing.T) {
			a := testutil.ParseFraction[integer.Int64](t, test.a)
			b := testutil.ParseFraction[integer.Int64](t, test.b)

			c, err := a.Cmp(b)
			assert.NoError(t, err)
			require.Equal(t, test.want, c)

			check := func(fn func(rational.Fraction[integer.Int64]) (bool, error), want bool) {
				t.Helper()
				got, err := fn(b)
				assert.NoError(t, err)
				require.Equal(t, want, got)
			}

			check(a.EQ, test.want == 0)
			check(a.NEQ, test.want != 0)
			check(a.LT, test.want < 0)
			check(a.LTE, test.want <= 0)
			check(a.GT, test.want > 0)
			check(a.GTE, test.want >= 0)
		})
	}
}

func TestEquality(t *testing.T) {
	values := testutil.ParseFractions[integer.Int64](t,
		"1/2", "2/4", "-1/2", "3/6", "0/1", "0/3", "5/1",
	)

	eq := func(a, b rational.Fraction[integer.Int64]) bool {
		ok, err := a.EQ(b)
		assert.NoError(t, err)
		return ok
	}

	for _, a := range values {
		require.True(t, eq(a, a), "%s == %s", a, a)

		for _, b := range values {
			require.Equal(t, eq(a, b), eq(b, a), "%s == %s", a, b)

			for _, c := range values {
				if eq(a, b) && eq(b, c) {
					require.True(t, eq(a, c), "%s == %s == %s", a, b, c)
				}
			}
		}
	}

	testutil.RequireDiff(t,
		testutil.ParseFractions[integer.Int64](t, "1/2", "-2/3", "0/1"),
		testutil.ParseFractions[integer.Int64](t, "4/8", "4/-6", "0/9"),
	)
}

func TestCompareReadOnly(t *testing.T) {
	a := testutil.I8(t, 60, 120)
	b := testutil.I8(t, 1, 3)

	// 120 * 3 doesn't fit, the comparison has to reduce a copy of a
	ok, err := a.GT(b)
	assert.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, "60/120", a.String())
	require.False(t, a.IsReduced())
}

func TestCompareOverflow(t *testing.T) {
	_, err := testutil.I8(t, 127, 1).Cmp(testutil.I8(t, 1, 127))
	assert.ErrorIs(t, err, rational.ErrOverflow)

	_, err = testutil.I8(t, 1, 100).EQ(testutil.I8(t, 1, 99))
	assert.ErrorOp(t, err, "common_denominator", rational.ErrOverflow)
}
