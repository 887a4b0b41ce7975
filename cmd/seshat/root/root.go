package root

import (
	"fmt"
	"os"
	"regexp"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/flarebyte/seshat-abacus/cmd/seshat/version"
	"github.com/flarebyte/seshat-abacus/internal/compute"
	"github.com/flarebyte/seshat-abacus/internal/report"
)

type options struct {
	numbers []float64
	asJSON  bool
	asYAML  bool
	verbose bool
}

// NewRootCmd creates the root command for seshat. The root command is the
// operation itself: it averages the numbers given via --numbers plus any
// trailing arguments and prints the mean on stdout.
func NewRootCmd() *cobra.Command {
	return newRootCmd(nil)
}

func newRootCmd(negatives []string) *cobra.Command {
	opts := &options{}
	cmd := &cobra.Command{
		Use:   "seshat --numbers <f1> [f2 ...]",
		Short: "CLI: The scribe goddess of reckoning tallies your numbers and returns their mean",
		Args:  cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runMean(opts, append(args, negatives...))
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.Flags().Float64SliceVarP(&opts.numbers, "numbers", "n", nil, "Numbers to average (repeatable or comma separated; trailing arguments are appended)")
	cmd.Flags().BoolVar(&opts.asJSON, "json", false, "Print the result as a single JSON line")
	cmd.Flags().BoolVar(&opts.asYAML, "yaml", false, "Print the result as a YAML document")
	cmd.Flags().BoolVarP(&opts.verbose, "verbose", "v", false, "Log progress to stderr")

	// Flag parse failures are usage errors, exit code 2.
	cmd.SetFlagErrorFunc(func(c *cobra.Command, err error) error {
		return usageError(err)
	})

	// Subcommands
	cmd.AddCommand(version.VersionCmd)

	return cmd
}

// Execute runs the root command with provided args.
func Execute(args []string) error {
	rest, negatives := splitNegativeNumbers(args)
	cmd := newRootCmd(negatives)
	cmd.SetArgs(rest)
	return cmd.Execute()
}

var negativeNumberRe = regexp.MustCompile(`^-(\d+(\.\d*)?|\.\d+)([eE][+-]?\d+)?$`)

// splitNegativeNumbers pulls out tokens that read as negative number
// literals so the flag parser does not mistake them for shorthand flags
// (none of the command's shorthands is a digit). A token directly after a
// bare --numbers/-n stays put, since the parser consumes it as the flag
// value, and everything after a -- separator already parses as positional.
func splitNegativeNumbers(args []string) (rest, negatives []string) {
	rest = make([]string, 0, len(args))
	for i, a := range args {
		if a == "--" {
			rest = append(rest, args[i:]...)
			return rest, negatives
		}
		if negativeNumberRe.MatchString(a) && !(i > 0 && isNumbersFlag(args[i-1])) {
			negatives = append(negatives, a)
			continue
		}
		rest = append(rest, a)
	}
	return rest, negatives
}

func isNumbersFlag(tok string) bool {
	return tok == "--numbers" || tok == "-n"
}

func runMean(opts *options, args []string) error {
	logger := newLogger(opts.verbose)

	trailing, err := compute.ParseNumbers(args)
	if err != nil {
		return usageError(err)
	}
	values := append(opts.numbers, trailing...)
	logger.Debug("parsed input", "flag", len(opts.numbers), "trailing", len(trailing))

	mean, err := compute.Mean(values)
	if err != nil {
		return failure(err)
	}
	logger.Debug("computed mean", "count", len(values), "mean", mean)

	res := report.New(values, mean)
	switch {
	case opts.asJSON:
		return res.WriteJSON(os.Stdout)
	case opts.asYAML:
		return res.WriteYAML(os.Stdout)
	}
	_, err = fmt.Fprintln(os.Stdout, compute.FormatMean(mean))
	return err
}

func newLogger(verbose bool) *log.Logger {
	logger := log.NewWithOptions(os.Stderr, log.Options{Prefix: "seshat"})
	if verbose {
		logger.SetLevel(log.DebugLevel)
	} else {
		logger.SetLevel(log.WarnLevel)
	}
	return logger
}
