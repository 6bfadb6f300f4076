package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

type demoConfig struct {
	PatternsFile string `mapstructure:"patterns_file"`
	NumSteps     int    `mapstructure:"num_steps"`
	ClearOnEnd   bool   `mapstructure:"clear_on_end"`
	LogLevel     string `mapstructure:"log_level"`
}

func defaultDemoConfig() *demoConfig {
	return &demoConfig{
		PatternsFile: "patterns.yaml",
		NumSteps:     10,
		ClearOnEnd:   true,
		LogLevel:     "info",
	}
}

func loadDemoConfig() (*demoConfig, error) {
	cfg := defaultDemoConfig()

	viper.SetConfigName("trajwriter-demo")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		viper.AddConfigPath(filepath.Join(xdg, "trajwriter-demo"))
	}

	viper.SetEnvPrefix("TRAJWRITER_DEMO")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, err
		}
	}

	if err := viper.Unmarshal(cfg); err != nil {
		return nil, err
	}

	if cfg.NumSteps < 1 {
		return nil, fmt.Errorf("demo config: num_steps must be >= 1, got %d", cfg.NumSteps)
	}
	return cfg, nil
}
