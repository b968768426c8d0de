package calc

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/cockroachdb/errors"
	"golang.org/x/sync/errgroup"
)

// Result is the outcome of the evaluation of one expression.
type Result struct {
	Expr   string
	Output string
	Err    error
}

// EvalAll evaluates exprs with at most jobs evaluations running at once.
// Results are returned in the order of exprs. Evaluation errors are reported
// in each Result, the returned error is only set if ctx is canceled.
func EvalAll(ctx context.Context, ev Evaluator, exprs []string, jobs int) ([]Result, error) {
	results := make([]Result, len(exprs))

	g, gctx := errgroup.WithContext(ctx)
	if jobs > 0 {
		g.SetLimit(jobs)
	}

	for i, expr := range exprs {
		i, expr := i, expr

		if gctx.Err() != nil {
			break
		}

		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}

			out, err := ev.Eval(expr)
			results[i] = Result{Expr: expr, Output: out, Err: err}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	return results, nil
}

// Exec reads expressions from r, one per line, evaluates them and writes
// their results to w in the same order. Empty lines and lines starting
// with '#' are ignored.
// Failed expressions print an error line and make Exec return an error
// once every result has been written.
func Exec(ctx context.Context, ev Evaluator, r io.Reader, w io.Writer, jobs int) error {
	var exprs []string

	s := bufio.NewScanner(r)
	for s.Scan() {
		line := strings.TrimSpace(s.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		exprs = append(exprs, line)
	}
	if err := s.Err(); err != nil {
		return errors.Wrap(err, "cannot read expressions")
	}

	results, err := EvalAll(ctx, ev, exprs, jobs)
	if err != nil {
		return err
	}

	return Write(w, results)
}

// Write prints results to w, one per line.
func Write(w io.Writer, results []Result) error {
	var failed int
	for _, res := range results {
		var err error
		if res.Err != nil {
			failed++
			_, err = fmt.Fprintf(w, "%s: error: %v\n", res.Expr, res.Err)
		} else {
			_, err = fmt.Fprintln(w, res.Output)
		}
		if err != nil {
			return err
		}
	}

	if failed > 0 {
		return errors.Newf("%d of %d expressions failed", failed, len(results))
	}
	return nil
}
