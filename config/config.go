package config

import (
	"fmt"

	"github.com/spf13/viper"
)

// Config holds all configuration values.
type Config struct {
	DataFile         string `mapstructure:"DATA_FILE"`
	AppointmentsFile string `mapstructure:"APPOINTMENTS_FILE"`
	MetricsAddr      string `mapstructure:"METRICS_ADDR"`
	PushURL          string `mapstructure:"PUSH_URL"`
	Env              string `mapstructure:"ENV"`
}

// Load initializes viper to read config values from env, file, or defaults.
// A missing config file is fine; environment variables and defaults apply.
func Load() (Config, error) {
	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")

	v.AutomaticEnv()

	v.SetDefault("DATA_FILE", "data.json")
	v.SetDefault("APPOINTMENTS_FILE", "appointments.jsonl")
	v.SetDefault("METRICS_ADDR", "")
	v.SetDefault("PUSH_URL", "")
	v.SetDefault("ENV", "development")

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return Config{}, fmt.Errorf("error reading config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("error unmarshaling config: %w", err)
	}
	return cfg, nil
}
