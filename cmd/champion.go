package cmd

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/benchtab/benchtab/internal/config"
	"github.com/benchtab/benchtab/internal/report"
	"github.com/benchtab/benchtab/internal/stats"
	"github.com/spf13/cobra"
)

var (
	flagChampAlg     string
	flagChampOut     string
	flagChampMetric  int
	flagChampScaling float64
)

func newChampionCmd(logger *slog.Logger) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "champion",
		Short: "Extract the instances where one algorithm wins",
		RunE: func(cmd *cobra.Command, args []string) error {
			if flagChampAlg == "" {
				return fmt.Errorf("flag --algorithm is required")
			}
			if flagChampOut == "" {
				return fmt.Errorf("flag --out is required")
			}
			if flagChampMetric < 0 || flagChampMetric > 3 {
				return fmt.Errorf("metric must be between 0 and 3, got %d", flagChampMetric)
			}
			if err := checkScaling(flagChampScaling); err != nil {
				return err
			}
			p, err := config.Load(paramsFile)
			if err != nil {
				return err
			}
			tab, err := loadResults(logger, p, flagChampScaling)
			if err != nil {
				return err
			}
			st := stats.Compute(tab, stats.Options{})
			out, err := os.Create(flagChampOut)
			if err != nil {
				return fmt.Errorf("creating output file %s: %w", flagChampOut, err)
			}
			defer out.Close()
			ext, err := report.ExtractChampions(out, tab, st, flagChampAlg, report.Criterion(flagChampMetric))
			if err != nil {
				return fmt.Errorf("extracting champion instances: %w", err)
			}
			fmt.Printf("Rejected: %d\n", ext.Rejected)
			fmt.Printf("Accepted: %d\n", ext.Accepted)
			return nil
		},
	}
	cmd.Flags().StringVarP(&flagChampAlg, "algorithm", "c", "", "algorithm whose winning instances are extracted")
	cmd.Flags().StringVarP(&flagChampOut, "out", "o", "", "file receiving the extracted instance names")
	cmd.Flags().IntVarP(&flagChampMetric, "metric", "m", 0, "win criterion: 0 sum-equal, 1 sum-strict, 2 best-equal, 3 best-earliest")
	cmd.Flags().Float64VarP(&flagChampScaling, "scaling", "s", 1.0, "time limit scaling factor (>0 and <= 1.0)")
	return cmd
}
