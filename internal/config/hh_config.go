package config

import (
	"fmt"

	"github.com/spf13/viper"
)

type HHConfig struct {
	MaxRequestsPerSecond float32 `mapstructure:"max_requests_per_second"`
	CacheTTLInDays       int     `mapstructure:"cache_ttl_days"`
}

func (config HHConfig) validate() error {
	if config.CacheTTLInDays <= 0 {
		return fmt.Errorf("cache_ttl_days must be greater than zero")
	}
	return nil
}

func (config HHConfig) bindEnvironmentVariables() error {

	if err := viper.BindEnv("hh.max_requests_per_second", "HH_MAX_REQUESTS_PER_SECOND"); err != nil {
		return err
	}

	return viper.BindEnv("hh.cache_ttl_days", "HH_CACHE_TTL_DAYS")
}
