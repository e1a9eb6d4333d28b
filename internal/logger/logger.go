package logger

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog"
)

// LoggerConfig is the logger section of the config file. DebugFile receives a
// full copy of the log in dev+debug; empty disables it.
type LoggerConfig struct {
	Level          string                 `mapstructure:"level" validate:"oneof=trace debug info warn error"`
	Format         string                 `mapstructure:"format" validate:"oneof=json console"`
	OutputTarget   string                 `mapstructure:"output_target" validate:"oneof=stdout stderr"`
	TimeField      string                 `mapstructure:"time_field"`
	TimeFormat     string                 `mapstructure:"time_format" validate:"oneof=rfc3339 rfc3339nano unix unix_ms"`
	ServiceName    string                 `mapstructure:"service_name"`
	ServiceVersion string                 `mapstructure:"service_version"`
	Env            string                 `mapstructure:"env" validate:"oneof=dev staging prod"`
	WithCaller     bool                   `mapstructure:"with_caller"`
	DebugFile      string                 `mapstructure:"debug_file"`
	Fields         map[string]interface{} `mapstructure:"fields"`
}

// timeFormats maps config names to zerolog's time field formats.
var timeFormats = map[string]string{
	"rfc3339":     "2006-01-02T15:04:05Z07:00",
	"rfc3339nano": "2006-01-02T15:04:05.999999999Z07:00",
	"unix":        zerolog.TimeFormatUnix,
	"unix_ms":     zerolog.TimeFormatUnixMs,
}

func New(logg *LoggerConfig) (logger zerolog.Logger, err error) {
	logg.setDefaults()

	v := validator.New()
	if err = v.Struct(logg); err != nil {
		return logger, fmt.Errorf("logger config validation error: %w", err)
	}

	level, err := zerolog.ParseLevel(logg.Level)
	if err != nil {
		return logger, err
	}

	zerolog.TimestampFieldName = logg.TimeField
	zerolog.TimeFieldFormat = timeFormats[logg.TimeFormat]

	var out io.Writer = os.Stdout
	if logg.OutputTarget == "stderr" {
		out = os.Stderr
	}
	if logg.Format == "console" {
		out = zerolog.ConsoleWriter{Out: out, TimeFormat: "15:04:05"}
	}

	// dev + debug also keeps a file with the full history; don't crash if it fails
	if logg.Env == "dev" && level <= zerolog.DebugLevel && logg.DebugFile != "" {
		if file, ferr := openDebugFile(logg.DebugFile); ferr == nil {
			out = zerolog.MultiLevelWriter(out, file)
		}
	}

	ctx := zerolog.New(out).
		With().
		Timestamp().
		Str("service", logg.ServiceName).
		Str("version", logg.ServiceVersion).
		Str("env", logg.Env)
	if logg.WithCaller {
		ctx = ctx.Caller()
	}
	if len(logg.Fields) > 0 {
		ctx = ctx.Fields(logg.Fields)
	}
	logger = ctx.Logger()

	// set log level globally
	zerolog.SetGlobalLevel(level)
	return logger, nil
}

func openDebugFile(path string) (*os.File, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, err
	}
	return os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
}

func (c *LoggerConfig) setDefaults() {
	if c.Env == "" {
		c.Env = "prod"
	}

	// level and format defaults depend on environment
	if c.Level == "" {
		if c.Env == "dev" {
			c.Level = "debug"
		} else {
			c.Level = "info"
		}
	}
	if c.Format == "" {
		if c.Env == "dev" {
			c.Format = "console"
		} else {
			c.Format = "json"
		}
	}

	// a CLI writes its own output to stdout, so logs default to stderr
	if c.OutputTarget == "" {
		c.OutputTarget = "stderr"
	}
	if c.TimeField == "" {
		c.TimeField = "ts"
	}
	if c.TimeFormat == "" {
		c.TimeFormat = "rfc3339nano"
	}
	if !c.WithCaller && c.Env == "dev" {
		c.WithCaller = true
	}
	if c.ServiceName == "" {
		c.ServiceName = "matchday"
	}
	if c.ServiceVersion == "" {
		c.ServiceVersion = "0.1.0"
	}
	if c.Fields == nil {
		c.Fields = make(map[string]interface{})
	}
}
