// Package cmd wires the CLI: catalog management, the audit log reader, and
// the simulation harness around the selection engine.
package cmd

import (
	"errors"
	"log"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/proctorly/itemsel/internal/logger"
	"github.com/proctorly/itemsel/internal/store"
)

const app = "itemsel"

// Config is the file/env configuration for the engine's tunables. Every
// field has a default; a config file is optional.
type Config struct {
	// ScoringServiceURL is the base URL of the external effectiveness/bias
	// scoring service. Empty disables external lookups and the catalog's
	// own scores apply.
	ScoringServiceURL string `mapstructure:"scoring-service-url"`

	// LookupTimeout bounds one scoring-service lookup.
	LookupTimeout time.Duration `mapstructure:"lookup-timeout"`

	// BiasThreshold and RelaxedBiasThreshold tune the bias guard.
	BiasThreshold        float64 `mapstructure:"bias-threshold"`
	RelaxedBiasThreshold float64 `mapstructure:"relaxed-bias-threshold"`

	// PoolCap limits the candidate pool per decision.
	PoolCap int `mapstructure:"pool-cap"`

	// CacheTTL is the catalog snapshot lifetime.
	CacheTTL time.Duration `mapstructure:"cache-ttl"`
}

var (
	// Used for flags.
	cfgFile string

	rootCmd = &cobra.Command{
		Use:   app,
		Short: "Adaptive item selection engine for ability assessment",
		Long: "itemsel estimates candidate ability with IRT models and picks the most\n" +
			"informative next item under constraint, fairness, and strategy rules.",
	}
)

// Execute executes the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	if err := viper.BindEnv("scoring-service-url", "ITEMSEL_SCORING_URL"); err != nil {
		log.Fatalf("binding ITEMSEL_SCORING_URL environment variable: %v", err)
	}

	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "a config file (default is itemsel.yaml in current directory)")
	rootCmd.PersistentFlags().String("db", "", "path to SQLite database file (overrides ITEMSEL_DB env var)")
	rootCmd.PersistentFlags().BoolP("debug", "d", false, "verbose/debug output")
	rootCmd.PersistentFlags().BoolP("json", "j", false, "json format for logging")

	viper.BindPFlag("debug", rootCmd.PersistentFlags().Lookup("debug"))
	viper.BindPFlag("json", rootCmd.PersistentFlags().Lookup("json"))

	viper.SetDefault("lookup-timeout", "150ms")
	viper.SetDefault("bias-threshold", 0.3)
	viper.SetDefault("relaxed-bias-threshold", 0.5)
	viper.SetDefault("pool-cap", 200)
	viper.SetDefault("cache-ttl", "1h")
}

func initConfig() {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.AddConfigPath(".")
		viper.SetConfigName(app)
		viper.SetConfigType("yaml")
	}

	// The config file is optional; an explicitly named one must parse.
	if err := viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if cfgFile != "" || !errors.As(err, &notFound) {
			log.Fatal(err)
		}
	}
}

func getConfig() (*Config, error) {
	var config *Config
	if err := viper.Unmarshal(&config); err != nil {
		return nil, err
	}
	return config, nil
}

// newLogger builds the process logger from the persistent flags.
func newLogger() *zap.Logger {
	lg, err := logger.New(viper.GetBool("json"), viper.GetBool("debug"))
	if err != nil {
		log.Fatalf("creating a logger: %s", err)
	}
	return lg
}

// resolveDBPath returns the database path using --db flag (highest
// priority), then ITEMSEL_DB env var, then the default XDG path.
func resolveDBPath(cmd *cobra.Command) (string, error) {
	if p, _ := cmd.Flags().GetString("db"); p != "" {
		return p, store.EnsureDir(p)
	}
	return store.DefaultDBPath()
}
