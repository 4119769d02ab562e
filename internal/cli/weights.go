package cli

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/lvquad/quadrature"
)

func (a *app) newWeightsCmd() *cobra.Command {
	var n int
	cmd := &cobra.Command{
		Use:   "weights",
		Short: "Print the weight vector of a rule for n samples",
		Example: `  lvquad weights --rule simpson38 --n 8`,
		RunE: func(cmd *cobra.Command, args []string) error {
			rule, err := a.rule()
			if err != nil {
				return err
			}
			w, err := quadrature.Weights(rule, n)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "# rule=%s n=%d scale=%.6g·dx\n", rule, n, quadrature.Scale(rule, 1))
			for i, v := range w {
				fmt.Fprintf(out, "%d\t%.15g\n", i, v)
			}
			return nil
		},
	}
	cmd.Flags().IntVar(&n, "n", 5, "sample count")
	return cmd
}

func (a *app) newRulesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "rules",
		Short: "List the supported integration rules",
		RunE: func(cmd *cobra.Command, args []string) error {
			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(tw, "RULE\tSTENCIL\tDEGREE\tSCALE")
			for _, r := range quadrature.Rules {
				fmt.Fprintf(tw, "%s\t%d\t%d\t%.6g·dx\n", r, r.Stencil(), r.Degree(), quadrature.Scale(r, 1))
			}
			return tw.Flush()
		},
	}
}
