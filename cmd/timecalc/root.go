package main

import (
	"context"
	"fmt"
	"io"

	"github.com/phrazzld/timekeeper/internal/domain/clock"
	"github.com/phrazzld/timekeeper/internal/domain/duration"
	"github.com/phrazzld/timekeeper/internal/platform/logger"
	"github.com/phrazzld/timekeeper/internal/service"
	"github.com/spf13/cobra"
)

// rootOpts holds the flags shared by every subcommand.
type rootOpts struct {
	logLevel   string
	calculator service.CalculatorService
}

// newRootCmd builds the command tree. Results go to out; logs and errors
// go to errOut.
func newRootCmd(out, errOut io.Writer) *cobra.Command {
	opts := &rootOpts{}

	rootCmd := &cobra.Command{
		Use:           "timecalc",
		Short:         "Evaluate clock-time and duration arithmetic",
		Long:          "Apply a chain of steps such as add:hours:25, subtract:PT1H30M, increment:second or multiply:3 to a clock time or a duration and print the result.",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			log, err := logger.SetupWithWriter(logger.LoggerConfig{Level: opts.logLevel}, errOut)
			if err != nil {
				return fmt.Errorf("failed to set up logger: %w", err)
			}
			opts.calculator = service.NewCalculatorService(log)
			return nil
		},
	}
	rootCmd.SetOut(out)
	rootCmd.SetErr(errOut)
	rootCmd.PersistentFlags().StringVarP(&opts.logLevel, "log-level", "l", "warn", "Log level: debug, info, warn or error")

	rootCmd.AddCommand(newTimeCmd(opts), newDurationCmd(opts))

	return rootCmd
}

// execute runs the command tree with args and returns the process exit code.
func execute(ctx context.Context, args []string, out, errOut io.Writer) int {
	cmd := newRootCmd(out, errOut)
	cmd.SetArgs(args)
	if err := cmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintf(errOut, "Error: %v\n", err)
		return 1
	}
	return 0
}

func newTimeCmd(opts *rootOpts) *cobra.Command {
	return &cobra.Command{
		Use:   "time <hh[:mm[:ss]]> [step...]",
		Short: "Evaluate steps against a wall-clock time",
		Long:  "Evaluate steps against a wall-clock time. Bulk additions and subtractions wrap around midnight; single-unit increments and decrements fail when they would cross it.",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			start, err := clock.Parse(args[0])
			if err != nil {
				return err
			}
			steps, err := service.ParseSteps(args[1:])
			if err != nil {
				return err
			}

			result, err := opts.calculator.EvaluateTime(cmd.Context(), start, steps)
			if err != nil {
				return err
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), result)
			return err
		},
	}
}

func newDurationCmd(opts *rootOpts) *cobra.Command {
	return &cobra.Command{
		Use:   "duration <PT...> [step...]",
		Short: "Evaluate steps against an elapsed duration",
		Long:  "Evaluate steps against an elapsed duration written as PT<h>H<m>M<s>S. Subtraction yields the absolute difference.",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			start, err := duration.Parse(args[0])
			if err != nil {
				return err
			}
			steps, err := service.ParseSteps(args[1:])
			if err != nil {
				return err
			}

			result, err := opts.calculator.EvaluateDuration(cmd.Context(), start, steps)
			if err != nil {
				return err
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), result)
			return err
		},
	}
}
