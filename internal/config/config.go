package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/adrg/xdg"
	"github.com/ilyakaznacheev/cleanenv"
)

const (
	fileName = "config.yml"
	appDir   = "tictactoe-hub"
)

type Config struct {
	LogLevel       string  `yaml:"log-level" env:"TTT_LOG_LEVEL" env-default:"warn"`
	LogFile        string  `yaml:"log-file" env:"TTT_LOG_FILE"`
	Seed           uint64  `yaml:"seed" env:"TTT_SEED" env-default:"0"`
	DictionaryPath string  `yaml:"dictionary-path" env:"TTT_DICTIONARY_PATH" env-default:"dic.txt"`
	Results        Results `yaml:"results"`
	Redis          Redis   `yaml:"redis"`
}

// Results controls the finished-game history. Results go to Redis when Enabled, to memory otherwise.
type Results struct {
	Enabled bool `yaml:"enabled" env:"TTT_RESULTS_ENABLED" env-default:"false"`
	History int  `yaml:"history" env:"TTT_RESULTS_HISTORY" env-default:"10"`
}

type Redis struct {
	Host string `yaml:"host" env:"TTT_REDIS_HOST" env-default:"localhost"`
	Port int    `yaml:"port" env:"TTT_REDIS_PORT" env-default:"6379"`
}

// MustLoad - load the configuration found by Locate, or defaults plus environment when there is none.
func MustLoad(workDir string) *Config {
	config, err := Load(workDir)
	if err != nil {
		panic(err)
	}

	return config
}

func Load(workDir string) (*Config, error) {
	config := &Config{}

	path, found, err := Locate(workDir)
	if err != nil {
		return nil, err
	}

	if !found {
		if err = cleanenv.ReadEnv(config); err != nil {
			return nil, fmt.Errorf("unable to read config from environment: %w", err)
		}

		return config, nil
	}

	if err = cleanenv.ReadConfig(path, config); err != nil {
		return nil, fmt.Errorf("unable to load config file %s: %w", path, err)
	}

	return config, nil
}

// Locate looks for config.yml in workDir, then in the XDG config directories.
func Locate(workDir string) (string, bool, error) {
	local := filepath.Join(workDir, fileName)

	_, err := os.Stat(local)
	switch {
	case err == nil:
		return local, true, nil
	case !errors.Is(err, fs.ErrNotExist):
		return "", false, fmt.Errorf("unable to stat %s: %w", local, err)
	}

	if path, err := xdg.SearchConfigFile(filepath.Join(appDir, fileName)); err == nil {
		return path, true, nil
	}

	return "", false, nil
}
