package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"glox/internal/lox"
)

const (
	colorAuto   = "auto"
	colorAlways = "always"
	colorNever  = "never"
)

// Config is read from a YAML file. Fields left out keep their defaults.
type Config struct {
	Prompt  string   `yaml:"prompt"`
	Color   string   `yaml:"color"`
	Debug   []string `yaml:"debug"`
	Persist bool     `yaml:"persist"`

	dumps lox.Dump
}

func defaultConfig() Config {
	return Config{
		Prompt:  ":> ",
		Color:   colorAuto,
		Persist: true,
	}
}

// configPath picks the file to load: the -c flag, then $GLOX_CONFIG, then
// ~/.gloxrc.yml. required is false only for the home default.
func configPath(flagPath string) (path string, required bool) {
	if flagPath != "" {
		return flagPath, true
	}
	if env := os.Getenv("GLOX_CONFIG"); env != "" {
		return env, true
	}
	home, err := os.UserHomeDir()
	if err != nil || home == "" {
		return "", false
	}
	return filepath.Join(home, ".gloxrc.yml"), false
}

func loadConfig(path string, required bool) (Config, error) {
	cfg := defaultConfig()
	if path == "" {
		return cfg, nil
	}

	file, err := os.Open(path)
	if err != nil {
		if !required && errors.Is(err, os.ErrNotExist) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("config: open %s: %w", path, err)
	}
	defer file.Close()

	decoder := yaml.NewDecoder(file)
	decoder.KnownFields(true)
	if err := decoder.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return cfg, fmt.Errorf("config: parse %s: %w", path, err)
	}

	if err := cfg.validate(); err != nil {
		return cfg, fmt.Errorf("config: %s: %w", path, err)
	}
	return cfg, nil
}

func (c *Config) validate() error {
	switch c.Color {
	case colorAuto, colorAlways, colorNever:
	case "":
		c.Color = colorAuto
	default:
		return fmt.Errorf("color must be auto, always or never, got %q", c.Color)
	}

	return c.addDumps(c.Debug...)
}

func (c *Config) addDumps(names ...string) error {
	for _, name := range names {
		d, err := lox.ParseDump(name)
		if err != nil {
			return err
		}
		c.dumps |= d
	}
	return nil
}

func (c *Config) options(dumpOut io.Writer) lox.Options {
	return lox.Options{Dumps: c.dumps, DumpOut: dumpOut}
}
