package config

import (
	"github.com/maxviazov/matchday/internal/logger"
)

type Config struct {
	Logger logger.LoggerConfig `mapstructure:"logger"`
	API    APIConfig           `mapstructure:"api"`
	Paging PagingConfig        `mapstructure:"paging"`
	Time   TimeConfig          `mapstructure:"time"`
}

// APIConfig points the resource client at the tracker service.
type APIConfig struct {
	BaseURL        string `mapstructure:"base_url" validate:"required,url"`
	TimeoutSeconds int    `mapstructure:"timeout_seconds" validate:"gte=0"`
	UserAgent      string `mapstructure:"user_agent"`
}

// PagingConfig holds list page sizes; zero keeps the client default.
type PagingConfig struct {
	Players  int `mapstructure:"players" validate:"gte=0"`
	Games    int `mapstructure:"games" validate:"gte=0"`
	Stadiums int `mapstructure:"stadiums" validate:"gte=0"`
}

// TimeConfig is the fixed display offset, in minutes east of UTC.
type TimeConfig struct {
	OffsetMinutes int `mapstructure:"offset_minutes" validate:"gte=-720,lte=840"`
}
