// Package config содержит функции для загрузки конфигурации приложения
package config

import (
	"fmt"
	"os"

	"go.uber.org/zap/zapcore"
	"gopkg.in/yaml.v3"

	"github.com/hazadus/go-movielist/internal/codec"
	"github.com/hazadus/go-movielist/internal/data"
)

const (
	defaultDataFile  = "movies.txt"
	defaultLogLevel  = "warn"
	defaultBackupKey = "movies.txt"
)

// Config структура для хранения конфигурации приложения
type Config struct {
	DataFile      string `yaml:"data_file"`
	Format        string `yaml:"format"`
	LogLevel      string `yaml:"log_level"`
	AwsBucketName string `yaml:"aws_bucket_name"`
	AwsAccessKey  string `yaml:"aws_access_key"`
	AwsSecretKey  string `yaml:"aws_secret_key"`
	AwsRegion     string `yaml:"aws_region"`
	AwsEndpoint   string `yaml:"aws_endpoint"`
	BackupKey     string `yaml:"backup_key"`
}

// Default возвращает конфигурацию по умолчанию
func Default() *Config {
	config := &Config{}
	config.applyDefaults()
	return config
}

// LoadConfig загружает конфигурацию приложения из указанного файла.
// Если файла нет, возвращает конфигурацию по умолчанию.
func LoadConfig(filePath string) (*Config, error) {
	path, err := data.ExpandPath(filePath)
	if err != nil {
		return nil, err
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return Default(), nil
		}
		return nil, fmt.Errorf("ошибка чтения конфигурации: %w", err)
	}

	config := &Config{}
	if err := yaml.Unmarshal(raw, config); err != nil {
		return nil, fmt.Errorf("ошибка разбора конфигурации: %w", err)
	}
	config.applyDefaults()

	if err := config.Validate(); err != nil {
		return nil, err
	}
	return config, nil
}

// Validate проверяет значения, которые нельзя исправить значениями по умолчанию
func (c *Config) Validate() error {
	if _, err := codec.ParseFormat(c.Format); err != nil {
		return err
	}
	if _, err := zapcore.ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("неверный уровень логирования %q: %w", c.LogLevel, err)
	}
	return nil
}

// FileFormat возвращает формат файла данных
func (c *Config) FileFormat() codec.Format {
	format, err := codec.ParseFormat(c.Format)
	if err != nil {
		return codec.FormatLegacy
	}
	return format
}

// Level возвращает уровень логирования
func (c *Config) Level() zapcore.Level {
	level, err := zapcore.ParseLevel(c.LogLevel)
	if err != nil {
		return zapcore.WarnLevel
	}
	return level
}

// HasBackup сообщает, настроено ли хранилище для резервных копий
func (c *Config) HasBackup() bool {
	return c.AwsBucketName != ""
}

func (c *Config) applyDefaults() {
	if c.DataFile == "" {
		c.DataFile = defaultDataFile
	}
	if c.Format == "" {
		c.Format = string(codec.FormatLegacy)
	}
	if c.LogLevel == "" {
		c.LogLevel = defaultLogLevel
	}
	if c.BackupKey == "" {
		c.BackupKey = defaultBackupKey
	}
}
