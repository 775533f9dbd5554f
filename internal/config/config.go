package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

const (
	DefaultPort   = 3000
	DefaultDBPath = "controle_acesso.db"
)

type Config struct {
	Port     int    `mapstructure:"port"`
	GRPCAddr string `mapstructure:"grpc_addr"` // empty disables the gRPC health listener

	// DB
	DBPath string `mapstructure:"db_path"`
	Seed   bool   `mapstructure:"seed"` // seed demo rows on a fresh database

	MaxLogLimit    int      `mapstructure:"max_log_limit"` // cap for /api/logs?limite; negative disables
	AllowedOrigins []string `mapstructure:"allowed_origins"`

	// StatsIntervalSec is how often the table-count gauges refresh; 0 disables.
	StatsIntervalSec int `mapstructure:"stats_interval_sec"`

	// Logging
	LogLevel   string `mapstructure:"log_level"`
	LogFile    string `mapstructure:"log_file"`
	LogConsole bool   `mapstructure:"log_console"`

	ShutdownTimeoutSec int `mapstructure:"shutdown_timeout_sec"`
}

// HTTPAddr is the listen address derived from Port.
func (c Config) HTTPAddr() string {
	return fmt.Sprintf(":%d", c.Port)
}

// Load reads configuration from defaults, an optional YAML file and ACESSO_*
// environment variables, in increasing precedence. An empty filename looks
// for config.yaml in the working directory and tolerates its absence; an
// explicit filename must exist.
func Load(filename string) (*Config, error) {
	v := viper.New()

	v.SetDefault("port", DefaultPort)
	v.SetDefault("grpc_addr", "")
	v.SetDefault("db_path", DefaultDBPath)
	v.SetDefault("seed", true)
	v.SetDefault("max_log_limit", 1000)
	v.SetDefault("allowed_origins", []string{"*"})
	v.SetDefault("stats_interval_sec", 0)
	v.SetDefault("log_level", "info")
	v.SetDefault("log_file", "")
	v.SetDefault("log_console", true)
	v.SetDefault("shutdown_timeout_sec", 5)

	v.SetEnvPrefix("ACESSO")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if filename != "" {
		v.SetConfigFile(filename)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if filename != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("read config: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) Validate() error {
	if c.Port <= 0 || c.Port > 65535 {
		return fmt.Errorf("invalid port %d", c.Port)
	}
	if strings.TrimSpace(c.DBPath) == "" {
		return errors.New("db_path is required")
	}
	if c.StatsIntervalSec < 0 {
		return fmt.Errorf("invalid stats_interval_sec %d", c.StatsIntervalSec)
	}
	if c.ShutdownTimeoutSec <= 0 {
		c.ShutdownTimeoutSec = 5
	}
	return nil
}
