package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"
)

const (
	defaultServerAddress = "localhost:8080"
	defaultEnv           = "local"
	defaultTimeout       = 30 * time.Second
	defaultConfigDir     = ".devdash"
	configName           = "config"
)

type Config struct {
	Env           string        `mapstructure:"app_env" yaml:"app_env"`
	ServerAddress string        `mapstructure:"server_address" yaml:"server_address"`
	Timeout       time.Duration `mapstructure:"timeout" yaml:"timeout,omitempty"`
}

// BaseURL добавляет схему, если адрес задан как host:port
func (c *Config) BaseURL() string {
	addr := strings.TrimRight(c.ServerAddress, "/")
	if strings.HasPrefix(addr, "http://") || strings.HasPrefix(addr, "https://") {
		return addr
	}
	return "http://" + addr
}

func (c *Config) validate() error {
	if c.ServerAddress == "" {
		return fmt.Errorf("server_address не может быть пустым")
	}
	if c.Timeout <= 0 {
		return fmt.Errorf("timeout должен быть положительным")
	}
	return nil
}

// Dir - каталог конфигурации клиента в домашней директории
func Dir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		home = "."
	}
	return filepath.Join(home, defaultConfigDir)
}

// Load читает .env, переменные окружения и YAML файл конфигурации.
// Пустой file означает поиск config.yaml в ~/.devdash и текущем каталоге.
func Load(file string) (*Config, error) {
	if _, err := os.Stat(".env"); err == nil {
		if err := godotenv.Load(".env"); err != nil {
			return nil, fmt.Errorf("ошибка загрузки .env файла: %w", err)
		}
	}

	v := viper.New()
	if file != "" {
		v.SetConfigFile(file)
	} else {
		v.AddConfigPath(Dir())
		v.AddConfigPath(".")
		v.SetConfigName(configName)
		v.SetConfigType("yaml")
	}

	return load(v)
}

func load(v *viper.Viper) (*Config, error) {
	v.AutomaticEnv()
	v.SetDefault("app_env", defaultEnv)
	v.SetDefault("server_address", defaultServerAddress)
	v.SetDefault("timeout", defaultTimeout)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("ошибка чтения конфигурации: %w", err)
		}
		// Конфиг не найден, используем окружение и значения по умолчанию
	}

	cfg := &Config{
		Env:           v.GetString("app_env"),
		ServerAddress: v.GetString("server_address"),
		Timeout:       v.GetDuration("timeout"),
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Save записывает конфигурацию в YAML файл, создавая каталог при необходимости
func Save(cfg *Config, path string) error {
	if err := cfg.validate(); err != nil {
		return err
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
		return fmt.Errorf("ошибка создания директории конфигурации: %w", err)
	}

	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("ошибка сериализации конфигурации: %w", err)
	}

	return os.WriteFile(path, data, 0o600)
}

// DefaultPath - путь, по которому init сохраняет конфигурацию
func DefaultPath() string {
	return filepath.Join(Dir(), configName+".yaml")
}
