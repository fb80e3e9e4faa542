package main

import (
	"fmt"
	"math"

	"github.com/Veraticus/silhouette/internal/classification"
	"github.com/Veraticus/silhouette/internal/cli"
	"github.com/Veraticus/silhouette/internal/common"
	"github.com/Veraticus/silhouette/internal/model"
	"github.com/spf13/cobra"
)

func classifyCmd() *cobra.Command {
	var (
		m       model.BodyMeasurements
		explain bool
	)

	cmd := &cobra.Command{
		Use:   "classify",
		Short: "Classify a body shape from measurements in inches",
		Long: `Classify determines the body shape from shoulder, bust, waist and hip measurements.

Use --explain to see which rule matched and the percentages it compared.`,
		Example: `  silhouette classify --shoulders 36 --bust 35 --waist 26 --hips 37
  silhouette classify --shoulders 34 --bust 34 --waist 30 --hips 40 --explain -o json`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			for name, v := range map[string]float64{"shoulders": m.Shoulders, "bust": m.Bust, "waist": m.Waist, "hips": m.Hips} {
				if math.IsNaN(v) || math.IsInf(v, 0) {
					return common.NewUserError(fmt.Sprintf("--%s must be a finite number", name), nil)
				}
				if v < 0 {
					return common.NewUserError(fmt.Sprintf("--%s must not be negative", name), nil)
				}
			}

			exp := classification.Explain(m)
			if explain {
				return writeResult(cmd, exp, func() string {
					return cli.RenderExplanation(exp)
				})
			}

			result := struct {
				BodyShape model.BodyType `json:"body_shape"`
			}{BodyShape: exp.BodyType}
			return writeResult(cmd, result, func() string {
				return cli.FormatField("Body shape", cli.Title(string(exp.BodyType))) + "\n"
			})
		},
	}

	cmd.Flags().Float64Var(&m.Shoulders, "shoulders", 0, "shoulder width")
	cmd.Flags().Float64Var(&m.Bust, "bust", 0, "bust measurement")
	cmd.Flags().Float64Var(&m.Waist, "waist", 0, "waist measurement")
	cmd.Flags().Float64Var(&m.Hips, "hips", 0, "hip measurement")
	cmd.Flags().BoolVar(&explain, "explain", false, "show the rule and metrics behind the classification")
	for _, name := range []string{"shoulders", "bust", "waist", "hips"} {
		_ = cmd.MarkFlagRequired(name)
	}

	return cmd
}
