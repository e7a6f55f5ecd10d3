package cmd

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/benchtab/benchtab/internal/config"
	"github.com/benchtab/benchtab/internal/result"
	"github.com/spf13/cobra"
)

var paramsFile string

func NewRootCmd(logger *slog.Logger) *cobra.Command {
	root := &cobra.Command{
		Use:   "benchtab",
		Short: "Comparison tables for heuristics from raw benchmark results",
	}
	root.PersistentFlags().StringVarP(&paramsFile, "params", "p", "parameters.txt", "parameter file path")
	root.AddCommand(newTableCmd(logger))
	root.AddCommand(newExtractCmd(logger))
	root.AddCommand(newChampionCmd(logger))
	root.AddCommand(newListCmd(logger))
	return root
}

func checkScaling(s float64) error {
	if s <= 0 || s > 1.0 {
		return fmt.Errorf("time scaling must be > 0 and <= 1.0, got %g", s)
	}
	return nil
}

// loadResults runs the input half of the pipeline: the restriction lists
// named by the parameters, then the results file itself.
func loadResults(logger *slog.Logger, p *config.Params, scaling float64) (*result.Table, error) {
	opts := result.LoadOptions{TimeScale: scaling}
	if p.Instances == config.Some {
		list, err := result.ReadNameList(p.InstanceListFile)
		if err != nil {
			return nil, err
		}
		opts.Instances = list
	}
	if p.Algorithms == config.Some {
		list, err := result.ReadNameList(p.AlgorithmListFile)
		if err != nil {
			return nil, err
		}
		opts.Algorithms = list
	}

	f, err := os.Open(p.ResultsFile)
	if err != nil {
		return nil, fmt.Errorf("opening results file %s: %w", p.ResultsFile, err)
	}
	defer f.Close()

	tab, ls, err := result.Load(f, opts)
	if err != nil {
		return nil, fmt.Errorf("loading results %s: %w", p.ResultsFile, err)
	}
	logger.Info("results loaded",
		"records", ls.Records,
		"instances", tab.NumInstances(),
		"algorithms", tab.NumAlgorithms(),
		"seeds", tab.NumSeeds())
	if ls.SkippedInstances > 0 || ls.SkippedAlgorithms > 0 {
		logger.Info("records outside the restriction lists were skipped",
			"instances", ls.SkippedInstances,
			"algorithms", ls.SkippedAlgorithms)
	}
	return tab, nil
}
