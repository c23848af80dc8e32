package cli

import (
	"fmt"

	"github.com/spf13/viper"
)

// Config describes the index the CLI operates on. Values come from an
// optional YAML file and can be overridden per-flag.
type Config struct {
	Family          string `mapstructure:"family"`
	Region          string `mapstructure:"region"`
	RegionCode      string `mapstructure:"region_code"`
	Currency        string `mapstructure:"currency"`
	Frequency       string `mapstructure:"frequency"`
	AvailabilityLag string `mapstructure:"availability_lag"`
	ObservationLag  string `mapstructure:"observation_lag"`
	Interpolated    bool   `mapstructure:"interpolated"`
	Ratio           bool   `mapstructure:"ratio"`
}

// DefaultConfig is a monthly euro-area CPI setup.
func DefaultConfig() Config {
	return Config{
		Family:          "HICP",
		Region:          "EU",
		RegionCode:      "EU",
		Currency:        "EUR",
		Frequency:       "Monthly",
		AvailabilityLag: "1M",
		ObservationLag:  "3M",
		Interpolated:    false,
		Ratio:           false,
	}
}

// LoadConfig reads a YAML config file, filling unset fields from defaults.
// An empty path returns the defaults.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()
	if path == "" {
		return cfg, nil
	}

	v := viper.New()
	v.SetConfigFile(path)
	if err := v.ReadInConfig(); err != nil {
		return Config{}, fmt.Errorf("reading config %s: %w", path, err)
	}
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("parsing config %s: %w", path, err)
	}
	return cfg, nil
}
