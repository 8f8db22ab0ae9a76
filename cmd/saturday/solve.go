package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newSolveCmd(flags *globalFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "solve [file]",
		Short: "Find a single satisfying model, or report UNSAT",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := pathArg(args)
			return runWatching(path, flags.watch, func() error {
				cnf, err := loadCNF(path)
				if err != nil {
					return err
				}
				res := cnf.Solve(flags.options())
				if !res.Ok {
					fmt.Println("UNSAT")
					return nil
				}
				fmt.Println("SAT")
				printAssignment(res.Assignment, cnf.V())
				return nil
			})
		},
	}
}

// printAssignment prints a model as a space-separated line of signed
// literals, one per variable 1..v.
func printAssignment(assignment map[int]bool, v int) {
	for i := 1; i <= v; i++ {
		if i > 1 {
			fmt.Print(" ")
		}
		if assignment[i] {
			fmt.Print(i)
		} else {
			fmt.Print(-i)
		}
	}
	fmt.Println()
}
