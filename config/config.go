// Package config loads the settings of wsd from defaults, a YAML file, a
// .env file and the environment, in increasing order of precedence.
package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Environment variables
const (
	EnvConfig      = "WSD_CONFIG"
	EnvLexiconPath = "WSD_LEXICON_PATH"
	EnvAddr        = "WSD_ADDR"
	EnvLogLevel    = "WSD_LOG_LEVEL"
	EnvCacheSize   = "WSD_CACHE_SIZE"
)

const (
	DefaultAddr      = ":8080"
	DefaultCacheSize = 8192
	DefaultLogLevel  = "info"
)

type Server struct {
	Addr         string        `yaml:"addr"`
	ReadTimeout  time.Duration `yaml:"read_timeout"`
	WriteTimeout time.Duration `yaml:"write_timeout"`
	Title        string        `yaml:"title"`
	Stylesheet   string        `yaml:"stylesheet"`

	// directory served under /static, f.ex. for the stylesheet
	StaticDir string `yaml:"static_dir"`
	Metrics   bool   `yaml:"metrics"`
}

type Log struct {
	Level       string `yaml:"level"`
	Development bool   `yaml:"development"`
}

type Config struct {
	// LexiconPath is a WordNet dict directory, a JSON sense directory or a
	// SQLite file.
	LexiconPath string `yaml:"lexicon_path"`
	CacheSize   int    `yaml:"cache_size"`

	// Overlap makes the frequency fallback count only words of the
	// sentence.
	Overlap bool `yaml:"overlap"`

	Server Server `yaml:"server"`
	Log    Log    `yaml:"log"`
}

func Default() *Config {
	return &Config{
		CacheSize: DefaultCacheSize,
		Server: Server{
			Addr:         DefaultAddr,
			ReadTimeout:  10 * time.Second,
			WriteTimeout: 30 * time.Second,
			Title:        "Word Sense Disambiguation",
			Stylesheet:   "bootstrap.min.css",
			Metrics:      true,
		},
		Log: Log{Level: DefaultLogLevel},
	}
}

// Load returns the defaults overridden by the YAML file at path (skipped
// when empty), then by the environment. envFiles are loaded into the
// environment first without overriding variables already set; a missing
// .env file is not an error.
func Load(path string, envFiles ...string) (*Config, error) {
	if err := loadEnvFiles(envFiles...); err != nil {
		return nil, err
	}

	cfg := Default()

	if path == "" {
		path = os.Getenv(EnvConfig)
	}

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("config file: %w", err)
		}
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("config file %s: %w", path, err)
		}
	}

	if err := cfg.applyEnv(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func loadEnvFiles(files ...string) error {
	if len(files) == 0 {
		files = []string{".env"}
	}

	for _, f := range files {
		if _, err := os.Stat(f); errors.Is(err, os.ErrNotExist) {
			continue
		}
		if err := godotenv.Load(f); err != nil {
			return fmt.Errorf("env file %s: %w", f, err)
		}
	}
	return nil
}

func (c *Config) applyEnv() error {
	if v := os.Getenv(EnvLexiconPath); v != "" {
		c.LexiconPath = v
	}
	if v := os.Getenv(EnvAddr); v != "" {
		c.Server.Addr = v
	}
	if v := os.Getenv(EnvLogLevel); v != "" {
		c.Log.Level = v
	}
	if v := os.Getenv(EnvCacheSize); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("%s: %w", EnvCacheSize, err)
		}
		c.CacheSize = n
	}
	return nil
}

func (c *Config) Validate() error {
	if c.LexiconPath == "" {
		return fmt.Errorf("lexicon path is not set (use --lexicon or %s)", EnvLexiconPath)
	}
	if c.CacheSize <= 0 {
		return fmt.Errorf("cache size must be positive, got %d", c.CacheSize)
	}
	return nil
}
