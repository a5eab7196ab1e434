package cmd

import (
	"context"
	"fmt"

	"github.com/nektos/coerce/pkg/common"
	"github.com/nektos/coerce/pkg/exprparser"
	"github.com/nektos/coerce/pkg/js"
	"github.com/nektos/coerce/pkg/model"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var verbose bool
var showType bool

// Execute is the entry point to running the CLI
func Execute(ctx context.Context, version string) error {
	rootCmd := &cobra.Command{
		Use:          "coerce",
		Short:        "Evaluate expressions with JavaScript's abstract coercion and comparison semantics.",
		Version:      version,
		SilenceUsage: true,
	}
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")

	evalCmd := &cobra.Command{
		Use:   "eval [expression...]",
		Short: "Evaluate expressions and print their coerced string form",
		Args:  cobra.MinimumNArgs(1),
		RunE:  newEvalAction(ctx),
	}
	evalCmd.Flags().BoolVarP(&showType, "type", "t", false, "print the typeof result next to each value")

	checkCmd := &cobra.Command{
		Use:   "check [file...]",
		Short: "Run YAML expression case suites and report mismatches",
		Args:  cobra.MinimumNArgs(1),
		RunE:  newCheckAction(ctx),
	}

	rootCmd.AddCommand(evalCmd, checkCmd)

	return rootCmd.ExecuteContext(ctx)
}

func newEvalAction(_ context.Context) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, args []string) error {
		if verbose {
			log.SetLevel(log.DebugLevel)
		}

		interpreter := exprparser.NewInterpeter(exprparser.Config{})
		for _, input := range args {
			result, err := interpreter.Evaluate(input)
			if err != nil {
				return err
			}

			output, err := js.ToString(result)
			if err != nil {
				return err
			}

			log.Debugf("'%s' evaluated to %s %q", input, js.TypeOf(result), output)
			if showType {
				fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\n", js.TypeOf(result), output)
			} else {
				fmt.Fprintln(cmd.OutOrStdout(), output)
			}
		}
		return nil
	}
}

func newCheckAction(ctx context.Context) func(*cobra.Command, []string) error {
	return func(_ *cobra.Command, args []string) error {
		if verbose {
			log.SetLevel(log.DebugLevel)
		}

		executors := make([]common.Executor, 0, len(args))
		for _, path := range args {
			executors = append(executors, common.NewPipelineExecutor(
				common.NewDebugExecutor("Checking case suite %s", path),
				common.NewFieldExecutor("suite", path, newSuiteExecutor(path)),
			))
		}

		return common.NewPipelineExecutor(executors...)(ctx)
	}
}

func newSuiteExecutor(path string) common.Executor {
	return func(ctx context.Context) error {
		logger := common.Logger(ctx)

		suite, err := model.ReadCaseFile(path)
		if err != nil {
			return err
		}

		interpreter := exprparser.NewInterpeter(exprparser.Config{})

		failed := 0
		for i, c := range suite.Cases {
			name := c.Name
			if name == "" {
				name = fmt.Sprintf("case %d", i)
			}

			if err := runCase(interpreter, c); err != nil {
				logger.Errorf("FAIL %s: %v", name, err)
				failed++
				continue
			}
			logger.Debugf("PASS %s", name)
		}

		if failed > 0 {
			return fmt.Errorf("%d of %d cases failed in %s", failed, len(suite.Cases), path)
		}

		logger.Infof("%d cases passed", len(suite.Cases))
		return nil
	}
}

func runCase(interpreter exprparser.Interpreter, c *model.Case) error {
	result, err := interpreter.Evaluate(c.Expr)

	if c.Error {
		if err == nil {
			return fmt.Errorf("expected an error, got %s", js.TypeOf(result))
		}
		return nil
	}
	if err != nil {
		return err
	}

	got, err := js.ToString(result)
	if err != nil {
		return err
	}
	if got != c.Want {
		return fmt.Errorf("expected %q, got %q", c.Want, got)
	}
	return nil
}
