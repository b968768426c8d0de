package rational_test

import (
	"encoding/json"
	"errors"
	"fmt"
	"testing"

	"github.com/chaisql/rational"
	"github.com/chaisql/rational/integer"
	"github.com/chaisql/rational/internal/testutil/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	tests := []struct {
		input string
		want  string
		fails error
	}{
		{"3/4", "3/4", nil},
		{" -3 / 4 ", "-3/4", nil},
		{"3/-4", "-3/4", nil},
		{"+3/4", "3/4", nil},
		{"6/8", "6/8", nil},
		{"3", "", rational.ErrInput},
		{"a/4", "", rational.ErrInput},
		{"3/b", "", rational.ErrInput},
		{"3/4/5", "", rational.ErrInput},
		{"", "", rational.ErrInput},
		{"3/0", "", rational.ErrDenominatorIsZero},
		{"200/1", "", rational.ErrInput},
		{"1/-128", "", rational.ErrOverflow},
	}

	for _, test := range tests {
		t.Run(test.input, func(t *testing.T) {
			f, err := rational.Parse[integer.Int8](test.input)
			if test.fails != nil {
				assert.ErrorOp(t, err, "Parse", test.fails)
				return
			}
			assert.NoError(t, err)
			require.Equal(t, test.want, f.String())
		})
	}

	require.Panics(t, func() { rational.MustParse[integer.Int8]("1/0") })
}

func TestInputErrorIs(t *testing.T) {
	var f rational.Fraction[integer.Int8]

	errs := map[string]error{
		"missing bar":      f.UnmarshalText([]byte("3")),
		"bad numerator":    f.UnmarshalText([]byte("a/4")),
		"bad denominator":  f.UnmarshalText([]byte("3/b")),
		"out of range":     f.UnmarshalText([]byte("200/1")),
		"bad json":         f.UnmarshalJSON([]byte(`"1/x"`)),
		"bad json integer": f.UnmarshalJSON([]byte(`1.5`)),
		"bad scan":         f.Scan(nil, 'd'),
		"trailing bytes":   f.UnmarshalBinary([]byte{0x21, 0x21, 0x21}),
		"truncated binary": f.UnmarshalBinary([]byte{0x21}),
	}

	for name, err := range errs {
		t.Run(name, func(t *testing.T) {
			// the standard library must see ErrInput without
			// relying on cockroachdb/errors marks.
			require.True(t, errors.Is(err, rational.ErrInput), "got %v", err)
			require.ErrorIs(t, err, rational.ErrInput)

			var opErr *rational.OpError
			require.True(t, errors.As(err, &opErr))
		})
	}

	_, err := rational.Parse[integer.Int8]("3/b")
	require.ErrorIs(t, err, rational.ErrInput)
	require.Contains(t, err.Error(), `invalid denominator "b"`)
}

func TestFormatRoundTrip(t *testing.T) {
	for _, s := range []string{"6/8", "-3/9", "0/5", "7/1", "-128/64", "127/127", "5/-10"} {
		t.Run(s, func(t *testing.T) {
			f := rational.MustParse[integer.Int8](s).Reduced()

			text := f.String()
			g, err := rational.Parse[integer.Int8](text)
			require.NoError(t, err)
			require.Equal(t, text, g.String())

			ok, err := f.EQ(g)
			require.NoError(t, err)
			require.True(t, ok)
		})
	}
}

func TestScan(t *testing.T) {
	var a, b rational.Fraction[integer.Int64]

	n, err := fmt.Sscan("1/2  -3 / 4", &a, &b)
	assert.NoError(t, err)
	require.Equal(t, 2, n)
	require.Equal(t, "1/2", a.String())
	require.Equal(t, "-3/4", b.String())

	_, err = fmt.Sscanf("ratio=5/6", "ratio=%v", &a)
	assert.NoError(t, err)
	require.Equal(t, "5/6", a.String())

	_, err = fmt.Sscan("5", &a)
	assert.ErrorIs(t, err, rational.ErrInput)
	require.Equal(t, "5/6", a.String())

	_, err = fmt.Sscan("5/0", &a)
	assert.ErrorIs(t, err, rational.ErrDenominatorIsZero)

	_, err = fmt.Sscanf("5/6", "%d", &a)
	assert.ErrorIs(t, err, rational.ErrInput)
}

func TestText(t *testing.T) {
	f := rational.MustParse[integer.Int64]("-22/7")

	text, err := f.MarshalText()
	assert.NoError(t, err)
	require.Equal(t, "-22/7", string(text))

	var g rational.Fraction[integer.Int64]
	assert.NoError(t, g.UnmarshalText(text))
	require.Equal(t, f, g)

	require.Equal(t, "-22/7", fmt.Sprint(f))
	require.Equal(t, "0/1", fmt.Sprint(rational.Fraction[integer.Int64]{}))
}

func TestJSON(t *testing.T) {
	type Recipe struct {
		Name  string                             `json:"name"`
		Ratio rational.Fraction[integer.Int64]   `json:"ratio"`
		Scale *rational.Fraction[integer.Big]    `json:"scale,omitempty"`
		Parts []rational.Fraction[integer.Int64] `json:"parts"`
	}

	r := Recipe{
		Name:  "dough",
		Ratio: rational.MustParse[integer.Int64]("2/3"),
		Parts: []rational.Fraction[integer.Int64]{
			rational.MustParse[integer.Int64]("1/4"),
			rational.MustParse[integer.Int64]("3/4"),
		},
	}

	data, err := json.Marshal(r)
	assert.NoError(t, err)
	require.JSONEq(t, `{"name":"dough","ratio":"2/3","parts":["1/4","3/4"]}`, string(data))

	var got Recipe
	assert.NoError(t, json.Unmarshal(data, &got))
	require.Equal(t, r, got)

	t.Run("integer", func(t *testing.T) {
		var got Recipe
		err := json.Unmarshal([]byte(`{"ratio": 5, "scale": "123456789012345678901234567890/7"}`), &got)
		assert.NoError(t, err)
		require.Equal(t, "5/1", got.Ratio.String())
		require.Equal(t, "123456789012345678901234567890/7", got.Scale.String())
	})

	t.Run("null", func(t *testing.T) {
		got := Recipe{Ratio: rational.MustParse[integer.Int64]("1/2")}
		assert.NoError(t, json.Unmarshal([]byte(`{"ratio": null}`), &got))
		require.Equal(t, "1/2", got.Ratio.String())
	})

	t.Run("invalid", func(t *testing.T) {
		var got Recipe
		err := json.Unmarshal([]byte(`{"ratio": "1-2"}`), &got)
		assert.ErrorIs(t, err, rational.ErrInput)

		err = json.Unmarshal([]byte(`{"ratio": 1.5}`), &got)
		assert.ErrorIs(t, err, rational.ErrInput)
	})
}
