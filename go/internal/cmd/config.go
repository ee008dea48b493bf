package main

import (
	"fmt"
	"os"
	"strconv"

	"gopkg.in/yaml.v3"
)

// Config holds service settings loaded from config.yaml. Environment
// variables override the file for deployment tweaks.
type Config struct {
	Server struct {
		Port string `yaml:"port"`
	} `yaml:"server"`
	Board struct {
		PageSize    int `yaml:"page_size"`
		CacheTTLSec int `yaml:"cache_ttl_sec"`
	} `yaml:"board"`
}

func defaultConfig() *Config {
	var config Config
	config.Server.Port = "8080"
	config.Board.PageSize = 1000
	config.Board.CacheTTLSec = 3600
	return &config
}

func loadConfig(path string) (*Config, error) {
	config := defaultConfig()

	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return config, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	if err := yaml.Unmarshal(data, config); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	config.Server.Port = getEnv("PORT", config.Server.Port)
	config.Board.PageSize = getEnvAsInt("BOARD_PAGE_SIZE", config.Board.PageSize)
	config.Board.CacheTTLSec = getEnvAsInt("BOARD_CACHE_TTL_SEC", config.Board.CacheTTLSec)

	return config, nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}
