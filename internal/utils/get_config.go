package utils

import (
	"os"

	"github.com/sirupsen/logrus"
	"gopkg.in/yaml.v2"
)

type Config struct {
	// Database configuration
	DBUser     string `yaml:"DB_USER"`
	DBName     string `yaml:"DB_NAME"`
	DBPassword string `yaml:"DB_PASSWORD"`
	DBPort     string `yaml:"DB_PORT"`
	DBHost     string `yaml:"DB_HOST"`

	// Schema tool behaviour
	LogLevel      string `yaml:"LOG_LEVEL"`
	SeedAllergens bool   `yaml:"SEED_ALLERGENS"`
}

var config Config

func LoadConfig() {
	file, err := os.ReadFile("config.yaml")
	if err != nil {
		logrus.WithError(err).Warn("error reading YAML file")
		return
	}

	if err := yaml.Unmarshal(file, &config); err != nil {
		logrus.WithError(err).Warn("error parsing YAML file")
		return
	}
}

func GetConfig(key string) string {
	switch key {
	case "DB_USER":
		return config.DBUser
	case "DB_NAME":
		return config.DBName
	case "DB_PASSWORD":
		return config.DBPassword
	case "DB_PORT":
		return config.DBPort
	case "DB_HOST":
		return config.DBHost
	case "LOG_LEVEL":
		return config.LogLevel
	case "SEED_ALLERGENS":
		if config.SeedAllergens {
			return "true"
		}
		return "false"
	default:
		return ""
	}
}
