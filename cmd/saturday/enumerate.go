package main

import (
	"fmt"

	"github.com/mitchellh/hashstructure"
	"github.com/spf13/cobra"
)

func newEnumerateCmd(flags *globalFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "enumerate [file]",
		Short: "Print every satisfying model",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := pathArg(args)
			var lastHash uint64
			haveLast := false
			return runWatching(path, flags.watch, func() error {
				cnf, err := loadCNF(path)
				if err != nil {
					return err
				}
				models := cnf.Enumerate(flags.options())
				if len(models) == 0 {
					fmt.Println("UNSAT")
					return nil
				}

				h, err := hashstructure.Hash(models, nil)
				if err != nil {
					return err
				}
				if haveLast && h == lastHash {
					// Same model set as last run; nothing changed worth reprinting.
					return nil
				}
				lastHash, haveLast = h, true

				fmt.Printf("%d model(s)\n", len(models))
				for _, m := range models {
					printAssignment(m, cnf.V())
				}
				return nil
			})
		},
	}
}
