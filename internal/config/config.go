package config

import (
	"fmt"
	"os"
	"time"

	"github.com/colecostanza/Anki-Automated-Quizzes/internal/models"
	"github.com/colecostanza/Anki-Automated-Quizzes/pkg/validator"
	"github.com/spf13/viper"
)

type Config struct {
	App    AppConfig         `mapstructure:"app" validate:"required"`
	DB     DBConfig          `mapstructure:"db" validate:"required"`
	Deck   DeckConfig        `mapstructure:"deck" validate:"required"`
	Quiz   models.QuizConfig `mapstructure:"quiz" validate:"required"`
	Export ExportConfig      `mapstructure:"export"`
	Env    string            `mapstructure:"env" validate:"oneof=development production staging"`
}

type AppConfig struct {
	Timeout time.Duration `mapstructure:"timeout" validate:"min=1"`
}

type DBConfig struct {
	Path        string        `mapstructure:"path" validate:"required"`
	BusyTimeout time.Duration `mapstructure:"busy_timeout" validate:"min=0"`
}

type DeckConfig struct {
	Path string `mapstructure:"path" validate:"required"`
	Name string `mapstructure:"name"`
}

type ExportConfig struct {
	HTMLPath string `mapstructure:"html_path"`
	PDFPath  string `mapstructure:"pdf_path"`
}

func Init() (*Config, error) {
	v := viper.New()

	v.AutomaticEnv()

	configName := os.Getenv("CONFIG_NAME")
	if configName == "" {
		configName = "default"
	}

	v.AddConfigPath("configs")
	v.SetConfigName(configName)

	if err := v.BindEnv("db.path", "QUIZ_DB_PATH"); err != nil {
		return nil, fmt.Errorf("failed to bind QUIZ_DB_PATH: %w", err)
	}
	if err := v.BindEnv("deck.path", "QUIZ_DECK_PATH"); err != nil {
		return nil, fmt.Errorf("failed to bind QUIZ_DECK_PATH: %w", err)
	}
	if err := v.BindEnv("deck.name", "QUIZ_DECK_NAME"); err != nil {
		return nil, fmt.Errorf("failed to bind QUIZ_DECK_NAME: %w", err)
	}

	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	cfg := Config{}

	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := validator.ValidateStruct(cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}
