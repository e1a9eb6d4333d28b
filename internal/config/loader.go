package config

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"
)

// Load reads path (YAML) and applies APP_* environment overrides, e.g.
// APP_API_BASE_URL. An empty path skips the file and uses defaults plus env.
func Load(path string) (*Config, error) {
	v := viper.New()
	setDefaults(v)

	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.SetEnvPrefix("APP")
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("config file not found: %w", err)
		}
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	// logger section is validated by logger.New after its own defaults are applied
	val := validator.New()
	for _, section := range []any{config.API, config.Paging, config.Time} {
		if err := val.Struct(section); err != nil {
			return nil, fmt.Errorf("invalid config: %w", err)
		}
	}
	return &config, nil
}

// setDefaults registers every key so AutomaticEnv can override it even when the
// file does not mention it.
func setDefaults(v *viper.Viper) {
	v.SetDefault("api.base_url", "http://localhost:8000/api")
	v.SetDefault("api.timeout_seconds", 15)
	v.SetDefault("api.user_agent", "matchday/0.1")
	v.SetDefault("paging.players", 50)
	v.SetDefault("paging.games", 20)
	v.SetDefault("paging.stadiums", 50)
	v.SetDefault("time.offset_minutes", 120)
	v.SetDefault("logger.env", "prod")
	v.SetDefault("logger.level", "")
	v.SetDefault("logger.format", "")
	v.SetDefault("logger.output_target", "")
	v.SetDefault("logger.debug_file", "")
}
