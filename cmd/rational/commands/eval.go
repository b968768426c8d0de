package commands

import (
	"github.com/chaisql/rational/cmd/rational/calc"
	"github.com/urfave/cli/v2"
)

// NewEvalCommand returns a cli.Command for "rational eval".
func NewEvalCommand() *cli.Command {
	return &cli.Command{
		Name:      "eval",
		Usage:     "Evaluate one or more expressions",
		UsageText: `rational eval "1/3 + 1/6" "inv -2/3" "7/2 % 1"
   rational eval -- "-1/2 + 1"`,
		Description: `Each argument is an expression, evaluated with the integer type
selected by the global --int flag. Results are printed one per line,
in the order of the arguments.

Expressions:
   A                a fraction (n/d) or an integer
   A op B           op is one of + - * / % == != < > <= >=
   fn A             fn is one of neg, abs, inv, reduce, value, hash`,
		Action: func(c *cli.Context) error {
			if !c.Args().Present() {
				return cli.ShowSubcommandHelp(c)
			}

			return runEval(c, c.Args().Slice())
		},
	}
}

func runEval(c *cli.Context, exprs []string) error {
	ev, err := newEvaluator(c)
	if err != nil {
		return err
	}

	results, err := calc.EvalAll(c.Context, ev, exprs, c.Int("jobs"))
	if err != nil {
		return err
	}

	return calc.Write(c.App.Writer, results)
}
