package cmd

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/benchtab/benchtab/internal/config"
	"github.com/benchtab/benchtab/internal/report"
	"github.com/spf13/cobra"
)

var (
	flagExtractOut string
	flagLevel      int
)

func newExtractCmd(logger *slog.Logger) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "extract",
		Short: "Extract the instances only a few algorithms solve best",
		RunE: func(cmd *cobra.Command, args []string) error {
			if flagExtractOut == "" {
				return fmt.Errorf("flag --out is required")
			}
			p, err := config.Load(paramsFile)
			if err != nil {
				return err
			}
			// Difficulty is judged across every instance in the results;
			// only the algorithm restriction applies.
			p.ForceAllInstances()
			tab, err := loadResults(logger, p, 1.0)
			if err != nil {
				return err
			}
			out, err := os.Create(flagExtractOut)
			if err != nil {
				return fmt.Errorf("creating output file %s: %w", flagExtractOut, err)
			}
			defer out.Close()
			ext, err := report.ExtractDifficult(out, tab, flagLevel)
			if err != nil {
				return fmt.Errorf("extracting difficult instances: %w", err)
			}
			fmt.Printf("Rejected: %d\n", ext.Rejected)
			fmt.Printf("Accepted: %d\n", ext.Accepted)
			return nil
		},
	}
	cmd.Flags().StringVarP(&flagExtractOut, "out", "o", "", "file receiving the extracted instance names")
	cmd.Flags().IntVarP(&flagLevel, "level", "l", -1, "easiness level (default: half the algorithm count)")
	return cmd
}
