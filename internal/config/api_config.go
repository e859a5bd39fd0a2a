package config

import (
	"errors"
	"fmt"

	"github.com/spf13/viper"
)

type APIConfig struct {
	Port        int    `mapstructure:"port"`
	MetricsPort int    `mapstructure:"metrics_port"`
	JWTSecret   string `mapstructure:"jwt_secret"`
}

func (config APIConfig) validate() error {
	var errs []error

	if config.Port == 0 {
		errs = append(errs, fmt.Errorf("missing variable: port"))
	}

	if config.MetricsPort == 0 {
		errs = append(errs, fmt.Errorf("missing variable: metrics_port"))
	}

	if config.JWTSecret == "" {
		errs = append(errs, fmt.Errorf("missing variable: jwt_secret"))
	}

	if len(errs) > 0 {
		return fmt.Errorf("multiple errors occurred: %w", errors.Join(errs...))
	}

	return nil
}

func (config APIConfig) bindEnvironmentVariables() error {

	if err := viper.BindEnv("api.port", "API_PORT"); err != nil {
		return err
	}

	if err := viper.BindEnv("api.metrics_port", "METRICS_PORT"); err != nil {
		return err
	}

	return viper.BindEnv("api.jwt_secret", "JWT_SECRET")
}
