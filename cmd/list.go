package cmd

import (
	"fmt"
	"log/slog"

	"github.com/benchtab/benchtab/internal/config"
	"github.com/spf13/cobra"
)

func newListCmd(logger *slog.Logger) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List the instances, algorithms and seeds in the results",
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := config.Load(paramsFile)
			if err != nil {
				return err
			}
			tab, err := loadResults(logger, p, 1.0)
			if err != nil {
				return err
			}
			fmt.Printf("Instances (%d):\n", tab.NumInstances())
			for _, name := range tab.Instances.Names() {
				fmt.Printf("  - %s\n", name)
			}
			fmt.Printf("\nAlgorithms (%d):\n", tab.NumAlgorithms())
			for _, name := range tab.Algorithms.Names() {
				fmt.Printf("  - %s\n", name)
			}
			fmt.Printf("\nSeeds: %d\n", tab.NumSeeds())
			return nil
		},
	}
}
