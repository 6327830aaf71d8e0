package cmd

import (
	"context"
	"strings"

	"github.com/spf13/cobra"
)

func stateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "state",
		Short: "Show stored listing count and pipeline stages",
		RunE: func(_ *cobra.Command, _ []string) error {
			c := newClient()
			s, err := c.GetSystemState(context.Background())
			if err != nil {
				return err
			}
			if jsonOutput() {
				return outputJSON(s)
			}

			tw := newTabWriter(stdout)
			tw.writef("Listings:\t%d\n", s.ListingsTotal)
			tw.writef("Stages:\t%s\n", strings.Join(s.Stages, " > "))
			return tw.finish()
		},
	}
}
