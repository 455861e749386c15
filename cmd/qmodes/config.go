package main

import (
	"errors"
	"fmt"
	"io/fs"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"

	"github.com/born-ml/qmodes/backend/cpu"
)

const (
	configFileName = "qmodes"
	configFileType = "yaml"
	envPrefix      = "QMODES"

	cfgKeyTolerance = "tolerance"
	cfgKeyWorkers   = "workers"
	cfgKeyParallel  = "parallel"
)

// loadEnvFile exports the variables of a dotenv file that are not already
// set. A missing file is not an error.
func loadEnvFile(path string) error {
	if path == "" {
		return nil
	}
	if err := godotenv.Load(path); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("load env file: %w", err)
	}
	return nil
}

// loadConfig reads qmodes.yaml from configDir and QMODES_* environment
// variables. A missing qmodes.yaml is not an error.
func loadConfig(configDir string) (*viper.Viper, error) {
	defaults := cpu.DefaultConfig()

	v := viper.New()
	v.SetDefault(cfgKeyTolerance, defaults.Tolerance)
	v.SetDefault(cfgKeyWorkers, defaults.Parallel.NumWorkers)
	v.SetDefault(cfgKeyParallel, defaults.Parallel.Enabled)
	v.SetConfigName(configFileName)
	v.SetConfigType(configFileType)
	v.AddConfigPath(configDir)
	v.SetEnvPrefix(envPrefix)
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if errors.As(err, &notFound) {
			return v, nil
		}
		return nil, fmt.Errorf("read config: %w", err)
	}
	return v, nil
}

// backendConfig maps the loaded keys onto a CPU backend configuration.
func backendConfig(v *viper.Viper) (cpu.Config, error) {
	c := cpu.DefaultConfig()

	tol := v.GetFloat64(cfgKeyTolerance)
	if tol <= 0 {
		return c, fmt.Errorf("config: %s must be positive, got %g", cfgKeyTolerance, tol)
	}
	c.Tolerance = tol

	workers := v.GetInt(cfgKeyWorkers)
	if workers < 0 {
		return c, fmt.Errorf("config: %s must not be negative, got %d", cfgKeyWorkers, workers)
	}
	if !v.GetBool(cfgKeyParallel) {
		workers = 1
	}
	return cpu.WithWorkers(c, workers), nil
}
