package main

import (
	"errors"
	"fmt"
	"log/slog"
	"os"

	"github.com/benchtab/benchtab/cmd"
	"github.com/benchtab/benchtab/internal/result"
)

func main() {
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	if err := cmd.NewRootCmd(logger).Execute(); err != nil {
		var missing *result.MissingNamesError
		if errors.As(err, &missing) {
			fmt.Fprintf(os.Stderr, "the following %s never appear in the results file:\n", missing.Kind)
			for _, name := range missing.Names {
				fmt.Fprintln(os.Stderr, "  "+name)
			}
		}
		os.Exit(1)
	}
}
