package main

import (
	"fmt"
	"sort"

	"github.com/spf13/cobra"

	"github.com/cespare/satsolve/config"
	"github.com/cespare/satsolve/encode/allocate"
)

func newAllocateCmd(flags *globalFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "allocate <file.yaml>",
		Short: "Enumerate every valid resource allocation in a problem document",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := args[0]
			return runWatching(path, flags.watch, func() error {
				doc, err := config.LoadAllocationProblemFile(path)
				if err != nil {
					return err
				}
				enc, err := allocate.Build(doc.Problem())
				if err != nil {
					return err
				}
				allocations := enc.EnumerateWithOptions(flags.options())
				if len(allocations) == 0 {
					fmt.Println("No allocation possible")
					return nil
				}
				fmt.Printf("%d allocation(s)\n", len(allocations))
				for _, a := range allocations {
					tasks := make([]int, 0, len(a))
					for task := range a {
						tasks = append(tasks, task)
					}
					sort.Ints(tasks)
					for i, task := range tasks {
						if i > 0 {
							fmt.Print(" ")
						}
						fmt.Printf("task%d->machine%d", task, a[task])
					}
					fmt.Println()
				}
				return nil
			})
		},
	}
}
