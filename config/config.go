package config

import (
	"errors"
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	APIBaseURL     string        `mapstructure:"api_base_url"`
	APIToken       string        `mapstructure:"api_token"`
	RequestTimeout time.Duration `mapstructure:"request_timeout"`

	ListenAddr     string   `mapstructure:"listen_addr"`
	AllowedOrigins []string `mapstructure:"allowed_origins"`

	Host       string `mapstructure:"host"`
	DBPort     int    `mapstructure:"dbport"`
	DBName     string `mapstructure:"dbname"`
	User_DB    string `mapstructure:"userdb"`
	PasswordDB string `mapstructure:"passworddb"`

	Admins     []int64 `mapstructure:"admins"`
	TgApiToken string  `mapstructure:"tg_api_token"`

	RedisURL string `mapstructure:"redis_url"`
}

var defaults = map[string]any{
	"api_base_url":    "",
	"api_token":       "",
	"request_timeout": "15s",
	"listen_addr":     ":8080",
	"allowed_origins": []string{"*"},
	"host":            "localhost",
	"dbport":          5432,
	"dbname":          "league_admin",
	"userdb":          "postgres",
	"passworddb":      "",
	"admins":          []int64{},
	"tg_api_token":    "",
	"redis_url":       "",
}

// InitConfig reads ./config/config.yaml, with LEAGUE_* environment overrides.
func InitConfig() (*Config, error) {
	return Load("./config")
}

// Load reads config.yaml from dir. A missing file is not an error as long as
// the environment provides the required keys.
func Load(dir string) (*Config, error) {
	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(dir)
	v.SetEnvPrefix("LEAGUE")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	for key, value := range defaults {
		v.SetDefault(key, value)
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("init config: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("decode config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks the keys the console cannot start without.
func (c *Config) Validate() error {
	if c.APIBaseURL == "" {
		return errors.New("config: api_base_url is required")
	}
	u, err := url.Parse(c.APIBaseURL)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return fmt.Errorf("config: api_base_url %q is not an absolute URL", c.APIBaseURL)
	}
	if c.RequestTimeout <= 0 {
		return errors.New("config: request_timeout must be positive")
	}
	if c.ListenAddr == "" {
		return errors.New("config: listen_addr is required")
	}
	return nil
}

// DSN builds the postgres connection string for the local journal database.
func (c *Config) DSN() string {
	return fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%d sslmode=disable TimeZone=UTC",
		c.Host, c.User_DB, c.PasswordDB, c.DBName, c.DBPort)
}

// IsAdmin reports whether chatID may use the operator commands.
func (c *Config) IsAdmin(chatID int64) bool {
	for _, admin := range c.Admins {
		if admin == chatID {
			return true
		}
	}
	return false
}
