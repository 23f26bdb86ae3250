package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/seedsearch/search"
)

func newEstimateCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "estimate",
		Short: "Print the seed count and expected number of results",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			c, err := a.loadCriteria()
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "seeds:            %d\n", c.ExpectedNumberOfSeeds())
			fmt.Fprintf(out, "frames per seed:  %d\n", search.FrameRange{Min: c.MinFrame, Max: c.MaxFrame}.Len())
			fmt.Fprintf(out, "expected results: %d\n", c.ExpectedNumberOfResults())
			return nil
		},
	}
}
