package main

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"log"
	"log/slog"
	"os"

	"github.com/reugn/go-proleptic/calendar"
	"github.com/reugn/go-proleptic/logger"
	"gopkg.in/yaml.v3"
)

// Config is the YAML configuration of the command.
type Config struct {
	LogLevel  string        `yaml:"log_level"`
	LogFormat string        `yaml:"log_format"`
	Display   DisplayConfig `yaml:"display"`
}

// DisplayConfig holds the default display flags.
type DisplayConfig struct {
	Date bool `yaml:"date"`
	Time bool `yaml:"time"`
}

func defaultConfig() Config {
	return Config{
		LogLevel:  "info",
		LogFormat: "text",
		Display:   DisplayConfig{Date: true},
	}
}

// loadConfig reads the configuration file at path over the defaults.
// An empty path yields the defaults.
func loadConfig(path string) (Config, error) {
	config := defaultConfig()
	if path == "" {
		return config, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return config, fmt.Errorf("read config: %w", err)
	}

	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	if err := decoder.Decode(&config); err != nil && err != io.EOF {
		return config, fmt.Errorf("parse config %s: %w", path, err)
	}

	return config, nil
}

func displayFlags(date, time bool) calendar.DisplayFlags {
	flags := calendar.DisplayYear
	if date {
		flags |= calendar.DisplayDate
	}
	if time {
		flags |= calendar.DisplayTime
	}
	return flags
}

// newLogger builds the logger described by the configuration, writing to w.
func (c Config) newLogger(w io.Writer) (logger.Logger, error) {
	level, err := logger.ParseLevel(c.LogLevel)
	if err != nil {
		return nil, err
	}

	switch c.LogFormat {
	case "", "text":
		return logger.NewSimpleLogger(log.New(w, "", log.LstdFlags), level), nil
	case "json":
		handler := slog.NewJSONHandler(w, &slog.HandlerOptions{
			Level:       slog.Level(level),
			ReplaceAttr: logger.ReplaceLevelAttr,
		})
		return logger.NewSlogLogger(context.Background(), slog.New(handler)), nil
	default:
		return nil, fmt.Errorf("unknown log format: %q", c.LogFormat)
	}
}
