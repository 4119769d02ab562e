package cli

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/lvquad/radiolysis"
)

func (a *app) newConstantsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "constants [ID...]",
		Short: "Show water-radiolysis equilibrium constants",
		RunE: func(cmd *cobra.Command, args []string) error {
			var rows []radiolysis.Equilibrium
			if len(args) == 0 {
				all, err := radiolysis.Table()
				if err != nil {
					return err
				}
				rows = all
			}
			for _, id := range args {
				e, err := radiolysis.Lookup(id)
				if err != nil {
					return err
				}
				rows = append(rows, e)
			}

			temp, err := radiolysis.Temperature()
			if err != nil {
				return err
			}
			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintf(tw, "# equilibria at %.0f °C\n", temp)
			fmt.Fprintln(tw, "ID\tREACTION\tPK\tK")
			for _, e := range rows {
				fmt.Fprintf(tw, "%s\t%s\t%.3f\t%.4e\n", e.ID, e.Reaction, e.PK, e.K())
			}
			return tw.Flush()
		},
	}
}
