package config

import (
	"errors"
	"time"

	"github.com/spf13/viper"
)

const Name = "config"

var Paths []string = []string{
	"/etc/stratisnode",
	"$HOME/.stratisnode",
	".",
}

var (
	ErrBindEnv         = errors.New("failed to bind env")
	ErrReadConfig      = errors.New("failed to read config")
	ErrUnmarshalConfig = errors.New("failed to unmarshal config")
)

var envs = map[string][]string{
	"log.level":          {"LOG_LEVEL"},
	"refresh_interval":   {"REFRESH_INTERVAL"},
	"storage.strategy":   {"STORAGE_STRATEGY"},
	"storage.gas_limit":  {"STORAGE_GAS_LIMIT"},
	"download.dir":       {"DOWNLOAD_DIR"},
	"download.max_batch": {"DOWNLOAD_MAX_BATCH"},
}

type LogConfig struct {
	Level string `mapstructure:"level"`
}

type StorageConfig struct {
	Strategy string         `mapstructure:"strategy"`
	GasLimit uint64         `mapstructure:"gas_limit"`
	Options  map[string]any `mapstructure:"options"`
}

type DownloadConfig struct {
	Dir      string `mapstructure:"dir"`
	MaxBatch int    `mapstructure:"max_batch"`
}

type Config struct {
	RefreshInterval time.Duration  `mapstructure:"refresh_interval"`
	Log             LogConfig      `mapstructure:"log"`
	Storage         StorageConfig  `mapstructure:"storage"`
	Download        DownloadConfig `mapstructure:"download"`
}

func Load() (*Config, error) {
	viper.SetConfigName(Name)
	for _, path := range Paths {
		viper.AddConfigPath(path)
	}

	viper.SetDefault("refresh_interval", 10*time.Minute)
	viper.SetDefault("log.level", "info")
	viper.SetDefault("download.max_batch", 16)
	viper.AutomaticEnv()

	for envName, keys := range envs {
		binding := []string{envName}
		binding = append(binding, keys...)

		if err := viper.BindEnv(binding...); err != nil {
			return nil, errors.Join(ErrBindEnv, err)
		}
	}

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, errors.Join(ErrReadConfig, err)
		}
	}

	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return nil, errors.Join(ErrUnmarshalConfig, err)
	}

	return &cfg, nil
}
