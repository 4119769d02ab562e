package cli

import (
	"fmt"
	"math"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/lvquad/ode"
)

func (a *app) newODECmd() *cobra.Command {
	var t0, t1, dt, y0 float64
	cmd := &cobra.Command{
		Use:   "ode",
		Short: "Compare explicit Euler with RK4 on dy/dt = y",
		Long: `Integrates dy/dt = y, y(t0) = y0 with explicit Euler and with classical RK4
on the same fixed grid and reports the final states, the exact value and the
largest pointwise gap between the two trajectories.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			growth := func(_, y float64) float64 { return y }

			eu, err := ode.Euler(growth, t0, t1, dt, y0)
			if err != nil {
				return err
			}
			rk, err := ode.RK4(growth, t0, t1, dt, y0)
			if err != nil {
				return err
			}
			gap, err := ode.MaxAbsDiff(eu, rk)
			if err != nil {
				return err
			}

			last := eu.T[eu.Len()-1]
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "steps=%d t=%.6g\n", eu.Len(), last)
			fmt.Fprintf(out, "euler=%.12g\n", eu.Final())
			fmt.Fprintf(out, "rk4=%.12g\n", rk.Final())
			fmt.Fprintf(out, "exact=%.12g\n", y0*math.Exp(last-t0))
			fmt.Fprintf(out, "max|euler-rk4|=%.6g\n", gap)
			return nil
		},
	}
	fl := cmd.Flags()
	fl.Float64Var(&t0, "t0", 0, "start time")
	fl.Float64Var(&t1, "t1", 5, "end time (exclusive)")
	fl.Float64Var(&dt, "dt", 0.01, "step size")
	fl.Float64Var(&y0, "y0", 1, "initial value")
	return cmd
}
