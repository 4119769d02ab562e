package cli

import (
	"fmt"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
	"k8s.io/klog/v2"

	"github.com/katalvlaran/lvquad/batch"
)

// batchRow is the YAML output shape of one result.
type batchRow struct {
	Name  string  `yaml:"name"`
	Rule  string  `yaml:"rule"`
	Value float64 `yaml:"value,omitempty"`
	Error string  `yaml:"error,omitempty"`
}

func (a *app) newBatchCmd() *cobra.Command {
	var output string
	cmd := &cobra.Command{
		Use:   "batch FILE",
		Short: "Evaluate a YAML file of integration jobs concurrently",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := a.config()
			if err != nil {
				return err
			}
			rule, err := a.rule()
			if err != nil {
				return err
			}
			opts, err := a.integrateOptions()
			if err != nil {
				return err
			}
			jobs, err := batch.LoadJobs(args[0], rule)
			if err != nil {
				return err
			}

			cache := batch.NewWeightCache(cfg.CacheTTL, time.Minute)
			proc := batch.NewProcessor(cfg.Workers, batch.WithCache(cache), batch.WithIntegrateOptions(opts...))
			results := proc.Process(cmd.Context(), jobs)

			failed := 0
			for _, r := range results {
				if r.Err != nil {
					failed++
				}
			}
			hits, misses := cache.Stats()
			klog.V(1).InfoS("batch complete", "file", args[0], "jobs", len(results), "failed", failed, "cacheHits", hits, "cacheMisses", misses)

			if err := writeResults(cmd, output, results); err != nil {
				return err
			}
			if failed > 0 {
				return fmt.Errorf("%d of %d jobs failed", failed, len(results))
			}
			return nil
		},
	}
	cmd.Flags().Int("workers", 0, "concurrent workers (default from config)")
	cmd.Flags().StringVarP(&output, "output", "o", "table", "output format: table or yaml")
	_ = a.v.BindPFlag("workers", cmd.Flags().Lookup("workers"))
	return cmd
}

func writeResults(cmd *cobra.Command, format string, results []batch.Result) error {
	switch format {
	case "yaml":
		rows := make([]batchRow, len(results))
		for i, r := range results {
			rows[i] = batchRow{Name: r.Name, Rule: r.Rule.String(), Value: r.Value}
			if r.Err != nil {
				rows[i].Error = r.Err.Error()
			}
		}
		data, err := yaml.Marshal(rows)
		if err != nil {
			return fmt.Errorf("marshal results: %w", err)
		}
		_, err = cmd.OutOrStdout().Write(data)
		return err
	case "table":
		tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
		fmt.Fprintln(tw, "#\tNAME\tRULE\tRESULT")
		for _, r := range results {
			if r.Err != nil {
				fmt.Fprintf(tw, "%d\t%s\t%s\terror: %v\n", r.Index, r.Name, r.Rule, r.Err)
				continue
			}
			fmt.Fprintf(tw, "%d\t%s\t%s\t%.15g\n", r.Index, r.Name, r.Rule, r.Value)
		}
		return tw.Flush()
	default:
		return fmt.Errorf("unknown output format %q (want table or yaml)", format)
	}
}
