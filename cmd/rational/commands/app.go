package commands

import (
	"context"
	"os"
	"os/signal"
	"runtime"
	"strings"
	"syscall"

	"github.com/chaisql/rational/cmd/rational/calc"
	"github.com/urfave/cli/v2"
)

// NewApp creates the rational CLI app.
func NewApp() *cli.App {
	app := cli.NewApp()
	app.Name = "rational"
	app.Usage = "Exact fraction calculator"
	app.UsageText = `rational [options] "1/3 + 1/6"
   rational [options] -- "-1/2 + 1"
   echo "1/3 + 1/6" | rational [options]

   Use -- before an expression starting with a negative operand.`
	app.EnableBashCompletion = true

	app.Flags = []cli.Flag{
		&cli.StringFlag{
			Name:    "int",
			Aliases: []string{"i"},
			Usage:   "integer type of the terms: " + strings.Join(calc.IntTypes, ", "),
			Value:   "int64",
			EnvVars: []string{"RATIONAL_INT"},
		},
		&cli.BoolFlag{
			Name:  "reduce",
			Usage: "print results in lowest terms",
			Value: true,
		},
		&cli.IntFlag{
			Name:    "jobs",
			Aliases: []string{"j"},
			Usage:   "number of expressions evaluated in parallel",
			Value:   runtime.NumCPU(),
		},
	}

	app.Commands = []*cli.Command{
		NewEvalCommand(),
		NewVersionCommand(),
	}

	// inject cancelable context to all commands
	ch := make(chan os.Signal, 1)
	signal.Notify(ch, os.Interrupt, syscall.SIGTERM)

	ctx, cancel := context.WithCancel(context.Background())

	go func() {
		defer cancel()
		<-ch
	}()

	for i := range app.Commands {
		action := app.Commands[i].Action
		app.Commands[i].Action = func(c *cli.Context) error {
			c.Context = ctx
			return action(c)
		}
	}

	// Root command
	app.Action = func(c *cli.Context) error {
		c.Context = ctx

		if c.Args().Present() {
			return runEval(c, []string{strings.Join(c.Args().Slice(), " ")})
		}

		if canReadFromStandardInput() {
			ev, err := newEvaluator(c)
			if err != nil {
				return err
			}

			return calc.Exec(c.Context, ev, os.Stdin, c.App.Writer, c.Int("jobs"))
		}

		return cli.ShowAppHelp(c)
	}

	app.After = func(c *cli.Context) error {
		cancel()
		return nil
	}

	return app
}

func newEvaluator(c *cli.Context) (calc.Evaluator, error) {
	return calc.New(calc.Options{
		Int:    c.String("int"),
		Reduce: c.Bool("reduce"),
	})
}

func canReadFromStandardInput() bool {
	fi, err := os.Stdin.Stat()
	if err != nil {
		return false
	}
	return (fi.Mode() & os.ModeNamedPipe) != 0
}
