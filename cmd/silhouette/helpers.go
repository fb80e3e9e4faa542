package main

import (
	"fmt"
	"io"

	"github.com/Veraticus/silhouette/internal/cli"
	"github.com/Veraticus/silhouette/internal/common"
	"github.com/Veraticus/silhouette/internal/config"
	"github.com/Veraticus/silhouette/internal/engine"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// newEngine builds an analysis engine from the loaded configuration.
func newEngine() (*engine.AnalysisEngine, error) {
	cfg, err := config.LoadAnalysisConfig()
	if err != nil {
		return nil, common.NewUserError("invalid analysis settings", err)
	}
	return engine.NewWithConfig(engine.Config{ReferenceInches: cfg.ReferenceInches}), nil
}

// outputFormat returns the validated --output value.
func outputFormat() (cli.OutputFormat, error) {
	format, err := cli.ParseOutputFormat(viper.GetString(keyOutput))
	if err != nil {
		return "", common.NewUserError("invalid --output", err)
	}
	return format, nil
}

// writeResult prints v in the requested structured format, or the pre-rendered text otherwise.
func writeResult(cmd *cobra.Command, v any, text func() string) error {
	format, err := outputFormat()
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if format == cli.OutputText {
		return writeText(out, text())
	}
	return cli.Encode(out, format, v)
}

func writeText(w io.Writer, text string) error {
	if _, err := fmt.Fprint(w, text); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}
	return nil
}
