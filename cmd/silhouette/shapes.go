package main

import (
	"strings"

	"github.com/Veraticus/silhouette/internal/cli"
	"github.com/Veraticus/silhouette/internal/common"
	"github.com/Veraticus/silhouette/internal/model"
	"github.com/Veraticus/silhouette/internal/styling"
	"github.com/spf13/cobra"
)

func shapesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "shapes [body-type]",
		Short: "Show the styling rules for each body shape",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			types := styling.BodyTypes()
			if len(args) == 1 {
				bt, err := model.ParseBodyType(args[0])
				if err != nil {
					return common.NewUserError("unknown body type", err)
				}
				types = []model.BodyType{bt}
			}

			rules := make(map[model.BodyType]model.StylingRule, len(types))
			for _, bt := range types {
				rule, ok := styling.Lookup(bt)
				if !ok {
					return common.NewUserError("no styling rules for "+string(bt), common.ErrUnknownBodyShape)
				}
				rules[bt] = rule
			}

			return writeResult(cmd, rules, func() string {
				var b strings.Builder
				for _, bt := range types {
					b.WriteString(cli.RenderStylingRule(bt, rules[bt]))
				}
				return b.String()
			})
		},
	}
}
