package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
)

type Config struct {
	// Input
	InputPath string

	// Chart output
	ChartPath     string
	ChartWidthIn  float64
	ChartHeightIn float64
}

func Load() *Config {
	cfg := &Config{
		InputPath: getEnv("INPUT_PATH", "./data/emissions.csv"),

		ChartPath:     getEnv("CHART_PATH", "./out/emissions.png"),
		ChartWidthIn:  getEnvFloat("CHART_WIDTH_IN", 10),
		ChartHeightIn: getEnvFloat("CHART_HEIGHT_IN", 6),
	}

	return cfg
}

// Validate validates the configuration and returns an error if invalid
func (c *Config) Validate() error {
	var errors []string

	if strings.TrimSpace(c.InputPath) == "" {
		errors = append(errors, "input path cannot be empty")
	}

	if strings.TrimSpace(c.ChartPath) == "" {
		errors = append(errors, "chart path cannot be empty")
	} else {
		validFormats := []string{".png", ".svg", ".pdf"}
		ext := strings.ToLower(filepath.Ext(c.ChartPath))
		isValidFormat := false
		for _, format := range validFormats {
			if ext == format {
				isValidFormat = true
				break
			}
		}
		if !isValidFormat {
			errors = append(errors, fmt.Sprintf("unsupported chart format '%s': must be one of %v", ext, validFormats))
		}
	}

	if c.ChartWidthIn < 1 || c.ChartWidthIn > 100 {
		errors = append(errors, fmt.Sprintf("invalid chart width %g: must be between 1 and 100 inches", c.ChartWidthIn))
	}
	if c.ChartHeightIn < 1 || c.ChartHeightIn > 100 {
		errors = append(errors, fmt.Sprintf("invalid chart height %g: must be between 1 and 100 inches", c.ChartHeightIn))
	}

	// Return combined errors
	if len(errors) > 0 {
		return fmt.Errorf("configuration validation failed:\n- %s", strings.Join(errors, "\n- "))
	}

	return nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvFloat(key string, defaultValue float64) float64 {
	if value := os.Getenv(key); value != "" {
		if f, err := strconv.ParseFloat(value, 64); err == nil {
			return f
		}
	}
	return defaultValue
}
