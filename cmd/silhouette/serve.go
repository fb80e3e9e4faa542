package main

import (
	"github.com/Veraticus/silhouette/internal/common"
	"github.com/Veraticus/silhouette/internal/config"
	"github.com/Veraticus/silhouette/internal/server"
	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func serveCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the analysis API over HTTP",
		Long: `Serve starts a JSON API:

  GET  /health
  GET  /api/v1/shapes[/:type]
  POST /api/v1/classify
  POST /api/v1/analyze
  POST /api/v1/recommend`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			serverCfg, err := config.LoadServerConfig()
			if err != nil {
				return common.NewUserError("invalid server settings", err)
			}
			prefs, err := config.LoadPreferences()
			if err != nil {
				return common.NewUserError("invalid preferences", err)
			}
			eng, err := newEngine()
			if err != nil {
				return err
			}

			if viper.GetString(config.KeyLogLevel) != "debug" {
				gin.SetMode(gin.ReleaseMode)
			}

			return server.New(eng, serverCfg, prefs).Run(cmd.Context())
		},
	}

	cmd.Flags().String("host", config.DefaultServerConfig().Host, "listen host")
	cmd.Flags().Int("port", config.DefaultServerConfig().Port, "listen port")
	_ = viper.BindPFlag(config.KeyServerHost, cmd.Flags().Lookup("host"))
	_ = viper.BindPFlag(config.KeyServerPort, cmd.Flags().Lookup("port"))

	return cmd
}
