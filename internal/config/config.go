package config

import (
	"errors"
	"fmt"
	"time"

	"github.com/samber/lo"
	"github.com/spf13/viper"
	"github.com/wheelibin/lightgroup/internal/constants"
	"github.com/wheelibin/lightgroup/internal/models"
)

type Config struct {
	BridgeIP        string              `mapstructure:"bridgeIp"`
	HueAppKey       string              `mapstructure:"hueApplicationKey"`
	Source          string              `mapstructure:"source"`
	StateFile       string              `mapstructure:"stateFile"`
	RefreshInterval time.Duration       `mapstructure:"refreshInterval"`
	LogFile         string              `mapstructure:"logFile"`
	LogLevel        string              `mapstructure:"logLevel"`
	Groups          []models.LightGroup `mapstructure:"groups"`
}

func SetDefaults(v *viper.Viper) {
	v.SetDefault("source", constants.SourceFile)
	v.SetDefault("stateFile", "states.json")
	v.SetDefault("refreshInterval", constants.DefaultRefreshInterval)
	v.SetDefault("logLevel", "info")
}

// ReadConfig reads configFile, or searches the usual locations for config.json when it is empty.
func ReadConfig(v *viper.Viper, configFile string) (*Config, error) {
	SetDefaults(v)

	if configFile != "" {
		v.SetConfigFile(configFile)
	} else {
		v.SetConfigName("config")                    // name of config file (without extension)
		v.SetConfigType("json")                      // REQUIRED if the config file does not have the extension in the name
		v.AddConfigPath("/etc/lightgroup/")          // path to look for the config file in
		v.AddConfigPath("$HOME/.config/lightgroup/") // call multiple times to add many search paths
		v.AddConfigPath(".")                         // optionally look for config in the working directory
	}

	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("error reading config file: %w", err)
	}

	return Load(v)
}

// Load decodes and validates config already present in v.
func Load(v *viper.Viper) (*Config, error) {
	cfg := Config{}
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("error parsing config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) Validate() error {
	var errs []error

	switch c.Source {
	case constants.SourceFile:
		if c.StateFile == "" {
			errs = append(errs, errors.New("stateFile is required for the file source"))
		}
	case constants.SourceHue:
		if c.BridgeIP == "" || c.HueAppKey == "" {
			errs = append(errs, errors.New("bridgeIp and hueApplicationKey are required for the hue source"))
		}
	default:
		errs = append(errs, fmt.Errorf("unknown source %q", c.Source))
	}

	if c.RefreshInterval <= 0 {
		errs = append(errs, errors.New("refreshInterval must be positive"))
	}

	if len(c.Groups) == 0 {
		errs = append(errs, errors.New("at least one group is required"))
	}
	for i, g := range c.Groups {
		if g.Name == "" {
			errs = append(errs, fmt.Errorf("group %d has no name", i))
		}
		if len(g.Entities) == 0 {
			errs = append(errs, fmt.Errorf("group (%s) has no entities", g.Name))
		}
	}
	names := lo.Map(c.Groups, func(g models.LightGroup, _ int) string { return g.Name })
	for _, dup := range lo.FindDuplicates(names) {
		errs = append(errs, fmt.Errorf("group (%s) is defined more than once", dup))
	}

	return errors.Join(errs...)
}
