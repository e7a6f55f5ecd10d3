package cmd

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/benchtab/benchtab/internal/config"
	"github.com/benchtab/benchtab/internal/names"
	"github.com/benchtab/benchtab/internal/report"
	"github.com/benchtab/benchtab/internal/stats"
	"github.com/spf13/cobra"
)

var (
	flagScaling  float64
	flagAbsolute bool
	flagNames    string
)

func newTableCmd(logger *slog.Logger) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "table",
		Short: "Compute the metric table and write it as CSV",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := checkScaling(flagScaling); err != nil {
				return err
			}
			p, err := config.Load(paramsFile)
			if err != nil {
				return err
			}
			tab, err := loadResults(logger, p, flagScaling)
			if err != nil {
				return err
			}
			st := stats.Compute(tab, stats.Options{Absolute: flagAbsolute})
			logger.Info("statistics computed", "absolute", flagAbsolute)

			display, err := names.Load(flagNames)
			if err != nil {
				return err
			}
			out, err := os.Create(p.OutputFile)
			if err != nil {
				return fmt.Errorf("creating output file %s: %w", p.OutputFile, err)
			}
			defer out.Close()
			if err := report.WriteTable(out, tab, st, display, flagAbsolute); err != nil {
				return fmt.Errorf("writing table to %s: %w", p.OutputFile, err)
			}
			logger.Info("table written", "file", p.OutputFile)
			return nil
		},
	}
	cmd.Flags().Float64VarP(&flagScaling, "scaling", "s", 1.0, "time limit scaling factor (>0 and <= 1.0)")
	cmd.Flags().BoolVarP(&flagAbsolute, "absolute", "a", false, "report absolute counts instead of percentages")
	cmd.Flags().StringVar(&flagNames, "names", "data/Alg_names.csv", "algorithm display-name file")
	return cmd
}
