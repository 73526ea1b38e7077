package config

import (
	"errors"
	"fmt"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	Server     ServerConfig     `mapstructure:"server"`
	Copywriter CopywriterConfig `mapstructure:"copywriter"`
	Toast      ToastConfig      `mapstructure:"toast"`
}

type ServerConfig struct {
	Addr string `mapstructure:"addr"`
}

type CopywriterConfig struct {
	Provider  string `mapstructure:"provider"`
	Model     string `mapstructure:"model"`
	APIKeyEnv string `mapstructure:"api_key_env"`
	APIKey    string `mapstructure:"api_key"`
}

type ToastConfig struct {
	Duration time.Duration `mapstructure:"duration"`
}

// LoadConfig loads configuration from config.yaml and environment variables.
// A missing config file is fine; defaults keep the binary runnable.
func LoadConfig() (*Config, error) {
	v := viper.New()

	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath("./deploy/")
	v.AddConfigPath("./")
	v.AddConfigPath("$HOME/.yaralane/")
	v.AddConfigPath("/etc/yaralane/")

	v.SetEnvPrefix("YARALANE")
	v.AutomaticEnv()

	v.SetDefault("server.addr", ":8080")
	v.SetDefault("copywriter.provider", "mock")
	v.SetDefault("copywriter.model", "gemini-2.5-flash")
	v.SetDefault("copywriter.api_key_env", "GEMINI_API_KEY")
	v.SetDefault("toast.duration", 3*time.Second)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	return &config, nil
}
