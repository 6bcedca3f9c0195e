package main

import (
	"fmt"

	"github.com/itemkit/itemsapi/internal/app/item"
	"github.com/itemkit/itemsapi/internal/infrastructure/httpx"
	"github.com/itemkit/itemsapi/internal/infrastructure/logger"
	"github.com/rs/zerolog"
	"github.com/spf13/viper"
)

type config struct {
	Port        string   `mapstructure:"port" json:"port"`
	LogLevel    logLevel `mapstructure:"log_level" json:"log_level"`
	MaxBodySize int64    `mapstructure:"max_body_size" json:"max_body_size"`

	Log       logger.OutputConfig   `mapstructure:"log" json:"log"`
	RateLimit httpx.RateLimitConfig `mapstructure:"rate_limit" json:"rate_limit"`
	Item      item.ValidationConfig `mapstructure:"item" json:"item"`
}

func loadConfig() config {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath("config")
	viper.AddConfigPath(".")

	if err := viper.ReadInConfig(); err != nil {
		panic(fmt.Errorf("fatal error config file: %w", err))
	}

	var cfg config
	if err := viper.Unmarshal(&cfg); err != nil {
		panic(fmt.Errorf("fatal error config file: %w", err))
	}

	return cfg
}

type logLevel string

const (
	logLevelDebug logLevel = "debug"
	logLevelInfo  logLevel = "info"
	logLevelWarn  logLevel = "warn"
	logLevelError logLevel = "error"
)

func (l logLevel) zeroLog() zerolog.Level {
	switch l {
	case logLevelDebug:
		return zerolog.DebugLevel
	case logLevelInfo:
		return zerolog.InfoLevel
	case logLevelWarn:
		return zerolog.WarnLevel
	case logLevelError:
		return zerolog.ErrorLevel

	default:
		return zerolog.InfoLevel
	}
}
