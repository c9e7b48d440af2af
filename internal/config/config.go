package config

import (
	"fmt"
	"os"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
	"github.com/rs/zerolog"
)

const (
	BackendMeCab  = "mecab"
	BackendKagome = "kagome"
)

// Config is the CLI configuration. Priority: ENV > YAML > defaults.
type Config struct {
	Analyzer AnalyzerConfig `yaml:"analyzer"`
	DB       DBConfig       `yaml:"db"`
	Log      LogConfig      `yaml:"log"`
}

type AnalyzerConfig struct {
	Backend   string        `yaml:"backend"    env:"MECABTEXT_BACKEND" env-default:"mecab"`
	MeCabPath string        `yaml:"mecab_path" env:"MECAB_PATH"        env-default:"/usr/local/bin/mecab"`
	Timeout   time.Duration `yaml:"timeout"    env:"MECABTEXT_TIMEOUT" env-default:"0s"`
}

type DBConfig struct {
	User     string `yaml:"user"     env:"MECABTEXT_DB_USER"     env-default:"root"`
	Password string `yaml:"password" env:"MECABTEXT_DB_PASSWORD" env-default:"password"`
	Addr     string `yaml:"addr"     env:"MECABTEXT_DB_ADDR"     env-default:"127.0.0.1"`
	Port     string `yaml:"port"     env:"MECABTEXT_DB_PORT"     env-default:"3306"`
	Name     string `yaml:"name"     env:"MECABTEXT_DB_NAME"     env-default:"mecabtext"`
}

type LogConfig struct {
	Level string `yaml:"level" env:"LOG_LEVEL" env-default:"info"`
}

// Load reads path when it is not empty, otherwise ENV and defaults only.
func Load(path string) (*Config, error) {
	var cfg Config
	if path != "" {
		if _, err := os.Stat(path); err != nil {
			return nil, fmt.Errorf("config: file %s: %w", path, err)
		}
		if err := cleanenv.ReadConfig(path, &cfg); err != nil {
			return nil, fmt.Errorf("config: read %s: %w", path, err)
		}
	} else if err := cleanenv.ReadEnv(&cfg); err != nil {
		return nil, fmt.Errorf("config: read env: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config: validate: %w", err)
	}
	return &cfg, nil
}

func (c *Config) Validate() error {
	switch c.Analyzer.Backend {
	case BackendMeCab:
		if c.Analyzer.MeCabPath == "" {
			return fmt.Errorf("analyzer.mecab_path is required for the %s backend", BackendMeCab)
		}
	case BackendKagome:
	default:
		return fmt.Errorf("analyzer.backend: unknown backend %q", c.Analyzer.Backend)
	}
	if c.Analyzer.Timeout < 0 {
		return fmt.Errorf("analyzer.timeout must not be negative")
	}
	if _, err := zerolog.ParseLevel(c.Log.Level); err != nil {
		return fmt.Errorf("log.level: %w", err)
	}
	return nil
}

// LogLevel returns the parsed level; Validate has already checked it.
func (c *Config) LogLevel() zerolog.Level {
	level, _ := zerolog.ParseLevel(c.Log.Level)
	return level
}
