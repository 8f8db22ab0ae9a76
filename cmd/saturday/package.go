package main

import (
	"fmt"
	"sort"

	"github.com/spf13/cobra"

	"github.com/cespare/satsolve/config"
	"github.com/cespare/satsolve/encode/packages"
)

func newPackageCmd(flags *globalFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "package <file.yaml>",
		Short: "Solve a package-installation problem document",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := args[0]
			return runWatching(path, flags.watch, func() error {
				doc, err := config.LoadPackageProblemFile(path)
				if err != nil {
					return err
				}
				enc, err := packages.SolveWithOptions(doc.Problem(), flags.options())
				if err != nil {
					return err
				}
				if !enc.Result.Ok {
					fmt.Println("No installation possible")
					return nil
				}
				named := enc.NamedResult()
				var installed []string
				for pkg, on := range named {
					if on {
						installed = append(installed, pkg)
					}
				}
				sort.Strings(installed)
				for _, pkg := range installed {
					fmt.Println(pkg)
				}
				return nil
			})
		},
	}
}
