// Package config содержит функции для загрузки конфигурации приложения
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// DefaultPath - путь к файлу конфигурации по умолчанию
const DefaultPath = "~/.playlist.yaml"

// Config структура для хранения конфигурации приложения
type Config struct {
	PlaylistFile    string `yaml:"playlist_file"`
	PlayDemoSeconds int    `yaml:"play_demo_seconds"` // Сколько секунд длится имитация воспроизведения
	LogLevel        string `yaml:"log_level"`
	Autosave        bool   `yaml:"autosave"` // Сохранять файл после изменяющих команд
	AwsBucketName   string `yaml:"aws_bucket_name"`
	AwsAccessKey    string `yaml:"aws_access_key"`
	AwsSecretKey    string `yaml:"aws_secret_key"`
	AwsRegion       string `yaml:"aws_region"`
	AwsEndpoint     string `yaml:"aws_endpoint"`
	AwsPrefix       string `yaml:"aws_prefix"`
}

// Default возвращает конфигурацию со значениями по умолчанию
func Default() *Config {
	return &Config{
		PlaylistFile:    "playlist.csv",
		PlayDemoSeconds: 5,
		LogLevel:        "warn",
		Autosave:        true,
		AwsRegion:       "us-east-1",
		AwsPrefix:       "playlists",
	}
}

// LoadConfig загружает конфигурацию приложения из указанного файла.
// Отсутствующий файл не ошибка: используются значения по умолчанию.
// Переменные окружения (в том числе из .env) переопределяют значения из файла.
func LoadConfig(filePath string) (*Config, error) {
	config := Default()

	path := filePath
	if strings.HasPrefix(path, "~") {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, err
		}
		path = strings.Replace(path, "~", home, 1)
	}

	data, err := os.ReadFile(path)
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("ошибка чтения файла конфигурации: %w", err)
	}
	if len(data) > 0 {
		if err := yaml.Unmarshal(data, config); err != nil {
			return nil, fmt.Errorf("ошибка разбора конфигурации: %w", err)
		}
	}

	// .env необязателен, поэтому ошибку его загрузки игнорируем
	_ = godotenv.Load()

	if err := config.applyEnv(); err != nil {
		return nil, err
	}

	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("некорректная конфигурация: %w", err)
	}

	return config, nil
}

// applyEnv переопределяет значения из переменных окружения
func (c *Config) applyEnv() error {
	overrides := map[string]*string{
		"PLAYLIST_FILE":      &c.PlaylistFile,
		"PLAYLIST_LOG_LEVEL": &c.LogLevel,
		"AWS_BUCKET_NAME":    &c.AwsBucketName,
		"AWS_ACCESS_KEY":     &c.AwsAccessKey,
		"AWS_SECRET_KEY":     &c.AwsSecretKey,
		"AWS_REGION":         &c.AwsRegion,
		"AWS_ENDPOINT":       &c.AwsEndpoint,
	}
	for name, field := range overrides {
		if value := os.Getenv(name); value != "" {
			*field = value
		}
	}

	if value := os.Getenv("PLAYLIST_DEMO_SECONDS"); value != "" {
		seconds, err := strconv.Atoi(value)
		if err != nil {
			return fmt.Errorf("неверное значение PLAYLIST_DEMO_SECONDS '%s': %w", value, err)
		}
		c.PlayDemoSeconds = seconds
	}

	return nil
}

// Validate проверяет корректность конфигурации
func (c *Config) Validate() error {
	if c.PlaylistFile == "" {
		return fmt.Errorf("путь к файлу плейлиста не может быть пустым")
	}
	if c.PlayDemoSeconds < 0 {
		return fmt.Errorf("длительность демо-воспроизведения не может быть отрицательной: %d", c.PlayDemoSeconds)
	}

	validLogLevels := map[string]bool{
		"debug": true, "info": true, "warn": true, "error": true,
	}
	if !validLogLevels[c.LogLevel] {
		return fmt.Errorf("неверный уровень логирования: %s (debug, info, warn или error)", c.LogLevel)
	}

	return nil
}
