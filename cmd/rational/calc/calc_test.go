package calc_test

import (
	"bytes"
	"context"
	"strconv"
	"strings"
	"testing"

	"github.com/chaisql/rational"
	"github.com/chaisql/rational/cmd/rational/calc"
	"github.com/stretchr/testify/require"
)

func TestEval(t *testing.T) {
	tests := []struct {
		expr   string
		want   string
		fails  error
		intTyp string
		raw    bool
	}{
		{expr: "1/3 + 1/6", want: "1/2"},
		{expr: "1/3 + 1/6", want: "9/18", raw: true},
		{expr: "1/2 - 3/4", want: "-1/4"},
		{expr: "2/3 * 3/4", want: "1/2"},
		{expr: "1/2 / 3", want: "1/6"},
		{expr: "7/2 % 1", want: "1/2"},
		{expr: "1/2 == 2/4", want: "true"},
		{expr: "1/2 != 2/4", want: "false"},
		{expr: "1/3 < 1/2", want: "true"},
		{expr: "1/3 > 1/2", want: "false"},
		{expr: "1/2 <= 2/4", want: "true"},
		{expr: "1/3 >= 1/2", want: "false"},
		{expr: "6/8", want: "3/4"},
		{expr: "6/8", want: "6/8", raw: true},
		{expr: "5", want: "5/1"},
		{expr: "neg 1/2", want: "-1/2"},
		{expr: "- 1/2", want: "-1/2"},
		{expr: "abs -1/2", want: "1/2"},
		{expr: "inv -2/3", want: "-3/2"},
		{expr: "reduce 6/8", want: "3/4", raw: true},
		{expr: "value -7/2", want: "-3"},
		{expr: "1/12 + 1/18", want: "5/36", intTyp: "int8"},
		{expr: "10/99 * 33/20", want: "1/6", intTyp: "int8"},
		{expr: "9223372036854775807 + 1", want: "9223372036854775808/1", intTyp: "big"},
		{expr: "127 + 1", fails: rational.ErrOverflow, intTyp: "int8"},
		{expr: "127 + 1", want: "128/1", intTyp: "int16"},
		{expr: "1/2 / 0", fails: rational.ErrDenominatorIsZero},
		{expr: "1/2 % 0", fails: rational.ErrDivisionByZero},
		{expr: "1/0", fails: rational.ErrDenominatorIsZero},
		{expr: "1/x", fails: rational.ErrInput},
		{expr: "x", fails: calc.ErrSyntax},
		{expr: "1/2 ^ 2", fails: calc.ErrSyntax},
		{expr: "sqrt 2", fails: calc.ErrSyntax},
		{expr: "1 + 2 + 3", fails: calc.ErrSyntax},
		{expr: "", fails: calc.ErrSyntax},
	}

	for _, test := range tests {
		name := test.expr
		if test.intTyp != "" {
			name += " " + test.intTyp
		}

		t.Run(name, func(t *testing.T) {
			ev, err := calc.New(calc.Options{Int: test.intTyp, Reduce: !test.raw})
			require.NoError(t, err)

			got, err := ev.Eval(test.expr)
			if test.fails != nil {
				require.ErrorIs(t, err, test.fails)
				return
			}
			require.NoError(t, err)
			require.Equal(t, test.want, got)
		})
	}
}

func TestEvalHash(t *testing.T) {
	ev, err := calc.New(calc.Options{Int: "int32"})
	require.NoError(t, err)

	a, err := ev.Eval("hash 1/2")
	require.NoError(t, err)
	b, err := ev.Eval("hash 3/6")
	require.NoError(t, err)
	require.Equal(t, a, b)
}

func TestNewUnknownType(t *testing.T) {
	_, err := calc.New(calc.Options{Int: "uint8"})
	require.Error(t, err)
}

func TestEvalAll(t *testing.T) {
	ev, err := calc.New(calc.Options{Int: "int64", Reduce: true})
	require.NoError(t, err)

	var exprs, want []string
	for i := 1; i <= 50; i++ {
		exprs = append(exprs, "1/"+strconv.Itoa(i)+" * "+strconv.Itoa(i))
		want = append(want, "1/1")
	}

	for _, jobs := range []int{0, 1, 4} {
		results, err := calc.EvalAll(context.Background(), ev, exprs, jobs)
		require.NoError(t, err)
		require.Len(t, results, len(exprs))

		for i, res := range results {
			require.NoError(t, res.Err)
			require.Equal(t, exprs[i], res.Expr)
			require.Equal(t, want[i], res.Output)
		}
	}

	t.Run("canceled", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		_, err := calc.EvalAll(ctx, ev, exprs, 2)
		require.ErrorIs(t, err, context.Canceled)
	})
}

func TestExec(t *testing.T) {
	ev, err := calc.New(calc.Options{Int: "int64", Reduce: true})
	require.NoError(t, err)

	var got bytes.Buffer
	err = calc.Exec(context.Background(), ev, strings.NewReader(`
		# sums
		1/3 + 1/6
		1/4 + 1/4

		1/2 < 2/3
	`), &got, 2)
	require.NoError(t, err)
	require.Equal(t, "1/2\n1/2\ntrue\n", got.String())

	got.Reset()
	err = calc.Exec(context.Background(), ev, strings.NewReader("1/2 + 1/2\n1/0\n3/4\n"), &got, 2)
	require.Error(t, err)
	require.Equal(t, "1/1\n1/0: error: Parse: denominator is zero\n3/4\n", got.String())
}
