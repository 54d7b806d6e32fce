package main

import (
	"fmt"
	"os"

	"github.com/hashicorp/go-hclog"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/katalvlaran/pprank/internal/config"
)

var rootCmd = &cobra.Command{
	Use:           "pprank",
	Short:         "Personalized PageRank over in-memory graphs",
	Long:          "pprank builds a synthetic weighted digraph and scores it with damped power iteration.",
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute runs the root command and exits non-zero on failure.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().String("config", "", "config file (default .pprank.yaml)")
	rootCmd.PersistentFlags().String("log-level", "info", "log level (trace, debug, info, warn, error)")
	_ = viper.BindPFlag("log_level", rootCmd.PersistentFlags().Lookup("log-level"))
}

func initConfig() {
	if cfgFile, _ := rootCmd.PersistentFlags().GetString("config"); cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName(".pprank")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")
		if home, err := os.UserHomeDir(); err == nil {
			viper.AddConfigPath(home)
		}
	}

	config.BindEnv()

	// A missing config file is fine; defaults apply.
	_ = viper.ReadInConfig()
}

// loadConfig resolves the configuration and a logger writing to the
// command's stderr.
func loadConfig(cmd *cobra.Command) (config.Config, hclog.Logger, error) {
	cfg, err := config.Load()
	if err != nil {
		return config.Config{}, nil, err
	}
	logger := hclog.New(&hclog.LoggerOptions{
		Name:   "pprank",
		Level:  hclog.LevelFromString(cfg.LogLevel),
		Output: cmd.ErrOrStderr(),
	})
	return cfg, logger, nil
}
