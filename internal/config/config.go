package config

import (
	"strings"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	AppPort             int    `mapstructure:"APP_PORT"`
	StaticDir           string `mapstructure:"STATIC_DIR"`
	GeminiAPIKey        string `mapstructure:"GEMINI_API_KEY"`
	GeminiModel         string `mapstructure:"GEMINI_MODEL"`
	GitHubOwner         string `mapstructure:"GITHUB_OWNER"`
	GitHubToken         string `mapstructure:"GITHUB_TOKEN"`
	RateLimitMax        int    `mapstructure:"RATE_LIMIT_MAX"`
	RateLimitWindowSecs int    `mapstructure:"RATE_LIMIT_WINDOW_SECS"`
	LogLevel            string `mapstructure:"LOG_LEVEL"`
}

// RateLimitWindow returns the rate-limit window as a duration.
func (c *Config) RateLimitWindow() time.Duration {
	return time.Duration(c.RateLimitWindowSecs) * time.Second
}

func LoadConfig() (*Config, error) {
	viper.SetDefault("APP_PORT", 8000)
	viper.SetDefault("STATIC_DIR", "./web/static")
	viper.SetDefault("GEMINI_API_KEY", "")
	viper.SetDefault("GEMINI_MODEL", "gemini-2.0-flash")
	viper.SetDefault("GITHUB_OWNER", "alexcarter-dev")
	viper.SetDefault("GITHUB_TOKEN", "")
	viper.SetDefault("RATE_LIMIT_MAX", 10)
	viper.SetDefault("RATE_LIMIT_WINDOW_SECS", 60)
	viper.SetDefault("LOG_LEVEL", "INFO")

	viper.SetConfigName(".env")
	viper.SetConfigType("env")
	viper.AddConfigPath(".")
	viper.AddConfigPath("./backend")

	viper.AutomaticEnv()
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, err
		}
	}

	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}
