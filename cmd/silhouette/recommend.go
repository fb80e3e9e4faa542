package main

import (
	"github.com/Veraticus/silhouette/internal/cli"
	"github.com/Veraticus/silhouette/internal/common"
	"github.com/Veraticus/silhouette/internal/config"
	"github.com/Veraticus/silhouette/internal/landmarks"
	"github.com/Veraticus/silhouette/internal/model"
	"github.com/Veraticus/silhouette/internal/search"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

type recommendOutput struct {
	Analysis       *model.AnalysisResult      `json:"analysis,omitempty"`
	Recommendation model.OutfitRecommendation `json:"recommendation"`
	Queries        []search.Query             `json:"queries,omitempty"`
}

func recommendCmd() *cobra.Command {
	var (
		bodyType      string
		landmarksFile string
		queries       bool
	)

	cmd := &cobra.Command{
		Use:   "recommend",
		Short: "Recommend an outfit for a body shape and occasion",
		Long: `Recommend builds an outfit from the styling rules for a body shape.

The body shape comes from --body-type, or from analyzing the views in --landmarks.
Preference flags override the preferences section of the config file.`,
		Example: `  silhouette recommend --body-type hourglass --occasion work
  silhouette recommend --landmarks ~/scans/front.json --occasion date --colors red,black --queries`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			prefs, err := config.LoadPreferences()
			if err != nil {
				return common.NewUserError("invalid preferences", err)
			}

			eng, err := newEngine()
			if err != nil {
				return err
			}

			var out recommendOutput
			if bodyType != "" {
				bt, err := model.ParseBodyType(bodyType)
				if err != nil {
					return common.NewUserError("invalid --body-type", err)
				}
				out.Recommendation, err = eng.RecommendForProfile(model.UserProfile{BodyType: bt}, prefs)
				if err != nil {
					return err
				}
			} else {
				views, err := landmarksFromFile(landmarksFile)
				if err != nil {
					return err
				}
				result, err := eng.Analyze(views)
				if err != nil {
					_ = writeText(cmd.ErrOrStderr(), cli.RenderAnalysis(result))
					return common.NewUserError("analysis failed", err)
				}
				out.Analysis = &result
				out.Recommendation, err = eng.Recommend(result, prefs)
				if err != nil {
					return err
				}
			}

			if queries {
				out.Queries = search.Plan(out.Recommendation)
			}

			return writeResult(cmd, out, func() string {
				text := ""
				if out.Analysis != nil {
					text += cli.RenderAnalysis(*out.Analysis) + "\n"
				}
				text += cli.RenderRecommendation(out.Recommendation)
				if len(out.Queries) > 0 {
					text += cli.RenderQueries(out.Queries)
				}
				return text
			})
		},
	}

	cmd.Flags().StringVar(&bodyType, "body-type", "", "body shape (rectangle, hourglass, triangle, inverted_triangle)")
	cmd.Flags().StringVar(&landmarksFile, "landmarks", "", "landmark file to analyze for the body shape")
	cmd.Flags().String("occasion", "", "occasion (everyday, work, date, party, formal_event, workout)")
	cmd.Flags().String("style", "", "style preference (casual, formal, trendy, minimalist, bohemian, classic)")
	cmd.Flags().String("budget", "", "budget range (low, mid, high)")
	cmd.Flags().StringSlice("colors", nil, "favorite colors, most preferred first")
	cmd.Flags().BoolVar(&queries, "queries", false, "include product search queries")

	cmd.MarkFlagsMutuallyExclusive("body-type", "landmarks")
	cmd.MarkFlagsOneRequired("body-type", "landmarks")

	_ = viper.BindPFlag(config.KeyOccasion, cmd.Flags().Lookup("occasion"))
	_ = viper.BindPFlag(config.KeyStyle, cmd.Flags().Lookup("style"))
	_ = viper.BindPFlag(config.KeyBudget, cmd.Flags().Lookup("budget"))
	_ = viper.BindPFlag(config.KeyColors, cmd.Flags().Lookup("colors"))

	return cmd
}

func landmarksFromFile(path string) ([]model.BodyLandmarks, error) {
	views, err := landmarks.LoadFile(config.ExpandPath(path))
	if err != nil {
		return nil, common.NewUserError("failed to read landmarks", err)
	}
	return views, nil
}
