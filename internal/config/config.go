// Package config loads the settings shared by the colorconv commands from
// environment variables and command-line flags.
package config

import (
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"github.com/gogpu/colorfmt"
)

// Config holds command configuration.
type Config struct {
	Target    colorfmt.Format
	Alpha     *float64
	Palette   string
	LogLevel  string
	Transport string
	Addr      string
	Args      []string
}

// Load reads configuration from environment variables, then args.
// Flags take precedence over environment variables.
func Load(name string, args []string) (*Config, error) {
	cfg := &Config{
		LogLevel:  envOrDefault("COLORFMT_LOG_LEVEL", "warn"),
		Transport: envOrDefault("COLORFMT_TRANSPORT", "stdio"),
		Addr:      envOrDefault("COLORFMT_ADDR", "localhost:8080"),
	}

	target, err := colorfmt.ParseFormat(envOrDefault("COLORFMT_TARGET", "hex"))
	if err != nil {
		return nil, fmt.Errorf("COLORFMT_TARGET: %w", err)
	}
	cfg.Target = target

	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	fs.TextVar(&cfg.Target, "to", cfg.Target, "target format: hex, rgb or hsl")
	fs.Func("alpha", "explicit alpha in [0, 1]", func(s string) error {
		a, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return err
		}
		if a < 0 || a > 1 {
			return fmt.Errorf("alpha %v out of range [0, 1]", a)
		}
		cfg.Alpha = &a
		return nil
	})
	fs.StringVar(&cfg.Palette, "palette", "", "YAML palette file to convert")
	fs.StringVar(&cfg.LogLevel, "log-level", cfg.LogLevel, "log level: debug, info, warn or error")
	fs.StringVar(&cfg.Transport, "transport", cfg.Transport, "MCP transport: stdio or http")
	fs.StringVar(&cfg.Addr, "addr", cfg.Addr, "listen address for the http transport")

	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	cfg.Args = fs.Args()

	if _, err := cfg.Level(); err != nil {
		return nil, err
	}
	switch cfg.Transport {
	case "stdio", "http":
	default:
		return nil, fmt.Errorf("unknown transport %q", cfg.Transport)
	}
	return cfg, nil
}

// Level returns the configured slog level.
func (c *Config) Level() (slog.Level, error) {
	switch strings.ToLower(c.LogLevel) {
	case "debug":
		return slog.LevelDebug, nil
	case "info":
		return slog.LevelInfo, nil
	case "warn":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	}
	return 0, fmt.Errorf("invalid log level: %s", c.LogLevel)
}

// Logger returns a JSON logger writing to w at the configured level.
func (c *Config) Logger(w io.Writer) *slog.Logger {
	level, err := c.Level()
	if err != nil {
		level = slog.LevelWarn
	}
	return slog.New(slog.NewJSONHandler(w, &slog.HandlerOptions{Level: level}))
}

// Options returns the conversion options selected by the configuration.
func (c *Config) Options() []colorfmt.Option {
	if c.Alpha == nil {
		return nil
	}
	return []colorfmt.Option{colorfmt.WithAlpha(*c.Alpha)}
}

func envOrDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
