package config

import (
	"errors"
	"fmt"
	"io/fs"
	"net"
	"strconv"
	"strings"
	"time"

	"github.com/Veraticus/silhouette/internal/body"
	"github.com/Veraticus/silhouette/internal/common"
	"github.com/Veraticus/silhouette/internal/model"
	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Viper keys.
const (
	KeyReferenceInches = "analysis.reference_inches"
	KeyWorkers         = "analysis.workers"
	KeyOccasion        = "preferences.occasion"
	KeyStyle           = "preferences.style"
	KeyBudget          = "preferences.budget"
	KeyColors          = "preferences.colors"
	KeyServerHost      = "server.host"
	KeyServerPort      = "server.port"
	KeyReadTimeout     = "server.read_timeout"
	KeyWriteTimeout    = "server.write_timeout"
	KeyLogLevel        = "logging.level"
	KeyLogFormat       = "logging.format"
)

// AnalysisConfig holds settings for the analysis pipeline.
type AnalysisConfig struct {
	ReferenceInches float64
	Workers         int
}

// DefaultAnalysisConfig returns the built-in analysis settings.
func DefaultAnalysisConfig() AnalysisConfig {
	return AnalysisConfig{
		ReferenceInches: body.DefaultReferenceInches,
		Workers:         4,
	}
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Host         string
	Port         int
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
}

// DefaultServerConfig returns the built-in server settings.
func DefaultServerConfig() ServerConfig {
	return ServerConfig{
		Host:         "127.0.0.1",
		Port:         8080,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
	}
}

// Addr returns the host:port listen address.
func (c ServerConfig) Addr() string {
	return net.JoinHostPort(c.Host, strconv.Itoa(c.Port))
}

// SetDefaults registers the built-in values with viper so config files and env vars only need overrides.
func SetDefaults() {
	analysis := DefaultAnalysisConfig()
	server := DefaultServerConfig()
	prefs := model.DefaultPreferences()

	viper.SetDefault(KeyReferenceInches, analysis.ReferenceInches)
	viper.SetDefault(KeyWorkers, analysis.Workers)
	viper.SetDefault(KeyOccasion, string(prefs.Occasion))
	viper.SetDefault(KeyStyle, string(prefs.StylePreference))
	viper.SetDefault(KeyBudget, string(prefs.BudgetRange))
	viper.SetDefault(KeyColors, prefs.FavoriteColors)
	viper.SetDefault(KeyServerHost, server.Host)
	viper.SetDefault(KeyServerPort, server.Port)
	viper.SetDefault(KeyReadTimeout, server.ReadTimeout)
	viper.SetDefault(KeyWriteTimeout, server.WriteTimeout)
	viper.SetDefault(KeyLogLevel, "info")
	viper.SetDefault(KeyLogFormat, "console")
}

// LoadAnalysisConfig reads analysis settings from viper.
func LoadAnalysisConfig() (AnalysisConfig, error) {
	cfg := DefaultAnalysisConfig()

	if viper.IsSet(KeyReferenceInches) {
		cfg.ReferenceInches = viper.GetFloat64(KeyReferenceInches)
	}
	if viper.IsSet(KeyWorkers) {
		cfg.Workers = viper.GetInt(KeyWorkers)
	}

	if cfg.ReferenceInches <= 0 {
		return AnalysisConfig{}, fmt.Errorf("%w: %s must be positive, got %v", common.ErrInvalidConfig, KeyReferenceInches, cfg.ReferenceInches)
	}
	if cfg.Workers <= 0 {
		return AnalysisConfig{}, fmt.Errorf("%w: %s must be positive, got %d", common.ErrInvalidConfig, KeyWorkers, cfg.Workers)
	}

	return cfg, nil
}

// LoadServerConfig reads HTTP server settings from viper.
func LoadServerConfig() (ServerConfig, error) {
	cfg := DefaultServerConfig()

	if viper.IsSet(KeyServerHost) {
		cfg.Host = viper.GetString(KeyServerHost)
	}
	if viper.IsSet(KeyServerPort) {
		cfg.Port = viper.GetInt(KeyServerPort)
	}
	if viper.IsSet(KeyReadTimeout) {
		cfg.ReadTimeout = viper.GetDuration(KeyReadTimeout)
	}
	if viper.IsSet(KeyWriteTimeout) {
		cfg.WriteTimeout = viper.GetDuration(KeyWriteTimeout)
	}

	if cfg.Port < 0 || cfg.Port > 65535 {
		return ServerConfig{}, fmt.Errorf("%w: %s out of range: %d", common.ErrInvalidConfig, KeyServerPort, cfg.Port)
	}
	if cfg.ReadTimeout < 0 || cfg.WriteTimeout < 0 {
		return ServerConfig{}, fmt.Errorf("%w: server timeouts must not be negative", common.ErrInvalidConfig)
	}

	return cfg, nil
}

// LoadPreferences reads the default user preferences from viper. Enum values are validated here.
func LoadPreferences() (model.UserPreferences, error) {
	prefs := model.DefaultPreferences()

	if v := viper.GetString(KeyOccasion); v != "" {
		occasion, err := model.ParseOccasion(v)
		if err != nil {
			return model.UserPreferences{}, fmt.Errorf("%w: %w", common.ErrInvalidConfig, err)
		}
		prefs.Occasion = occasion
	}
	if v := viper.GetString(KeyStyle); v != "" {
		style, err := model.ParseStylePreference(v)
		if err != nil {
			return model.UserPreferences{}, fmt.Errorf("%w: %w", common.ErrInvalidConfig, err)
		}
		prefs.StylePreference = style
	}
	if v := viper.GetString(KeyBudget); v != "" {
		budget, err := model.ParseBudgetRange(v)
		if err != nil {
			return model.UserPreferences{}, fmt.Errorf("%w: %w", common.ErrInvalidConfig, err)
		}
		prefs.BudgetRange = budget
	}
	if viper.IsSet(KeyColors) {
		prefs.FavoriteColors = cleanColors(viper.GetStringSlice(KeyColors))
	}

	return prefs, nil
}

// cleanColors trims and lowercases color names, dropping blanks. A single comma-separated entry,
// as env vars deliver it, is split.
func cleanColors(colors []string) []string {
	var out []string
	for _, entry := range colors {
		for _, c := range strings.Split(entry, ",") {
			c = strings.ToLower(strings.TrimSpace(c))
			if c != "" {
				out = append(out, c)
			}
		}
	}
	return out
}

// LoadDotEnv loads environment variables from the given .env files, or ./.env when none are given.
// Missing files are ignored and variables already set in the environment win.
func LoadDotEnv(paths ...string) error {
	if len(paths) == 0 {
		paths = []string{".env"}
	}

	for _, p := range paths {
		if err := godotenv.Load(ExpandPath(p)); err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				continue
			}
			return fmt.Errorf("failed to load %s: %w", p, err)
		}
	}
	return nil
}
