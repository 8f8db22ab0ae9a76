package main

import (
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/cespare/satsolve"
)

// globalFlags holds the persistent flags shared by every subcommand.
type globalFlags struct {
	verbose    bool
	noUnitProp bool
	watch      bool
}

func newRootCmd() *cobra.Command {
	var flags globalFlags

	root := &cobra.Command{
		Use:   "saturday",
		Short: "A toy SAT solver",
		Long: `Saturday reads a problem specification (a DIMACS CNF file, or a YAML
problem document) and solves it.`,
		SilenceUsage: true,
	}

	root.PersistentFlags().BoolVarP(&flags.verbose, "verbose", "v", false, "trace solver internals to stderr")
	root.PersistentFlags().BoolVar(&flags.noUnitProp, "no-unit-prop", false, "disable unit propagation")
	root.PersistentFlags().BoolVar(&flags.watch, "watch", false, "re-run whenever the input file changes")

	root.AddCommand(
		newSolveCmd(&flags),
		newEnumerateCmd(&flags),
		newPackageCmd(&flags),
		newAllocateCmd(&flags),
	)
	return root
}

// tracer returns the saturday.Tracer the persistent --verbose flag selects.
func (f *globalFlags) tracer() saturday.Tracer {
	if !f.verbose {
		return saturday.NopTracer
	}
	logger := logrus.New()
	logger.SetLevel(logrus.DebugLevel)
	return saturday.NewLogrusTracer(logger)
}

func (f *globalFlags) options() saturday.Options {
	return saturday.Options{
		UnitProp: !f.noUnitProp,
		Tracer:   f.tracer(),
	}
}
