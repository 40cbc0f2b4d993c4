package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/jinzhu/configor"
	"github.com/joho/godotenv"
)

type AppConfig struct {
	AccessKeyID       string `env:"AWS_ACCESS_KEY_ID" required:"true"`
	SecretAccessKey   string `env:"AWS_SECRET_ACCESS_KEY" required:"true"`
	Region            string `env:"AWS_REGION" required:"true"`
	BucketName        string `env:"BUCKET_NAME" required:"true"`
	SourceFolder      string `env:"PASTA" required:"true"`
	KeyPrefix         string `env:"OFFLOAD_KEY_PREFIX"`
	DeleteAfterUpload bool   `env:"OFFLOAD_DELETE_AFTER_UPLOAD"`
	Endpoint          string `env:"OFFLOAD_S3_ENDPOINT"`
	UsePathStyle      bool   `env:"OFFLOAD_S3_PATH_STYLE"`
	HTTPTimeout       int    `env:"OFFLOAD_HTTP_TIMEOUT"`
	IntervalMinutes   int    `env:"OFFLOAD_INTERVAL"`
	SNSTopic          string `env:"OFFLOAD_SNS_TOPIC"`
	Log               LogConfig
}

type LogConfig struct {
	File      string `env:"OFFLOAD_LOG_FILE" default:"logs/file_upload.log"`
	MaxSizeMB int    `env:"OFFLOAD_LOG_MAX_SIZE" default:"1"`
	Level     string `env:"OFFLOAD_LOG_LEVEL" default:"info"`
}

// loadDotEnv copies a .env file into the environment when one exists.
// Variables already set in the environment take precedence.
func loadDotEnv(path string) error {
	if _, statErr := os.Stat(path); os.IsNotExist(statErr) {
		return nil
	}
	return godotenv.Load(path)
}

// LoadConfig reads the configuration from the environment, layered over any
// config files given.
func LoadConfig(files ...string) (AppConfig, error) {
	var appConfig AppConfig
	loader := configor.New(&configor.Config{ENVPrefix: "-"})
	if loadErr := loader.Load(&appConfig, files...); loadErr != nil {
		return appConfig, &ConfigError{Err: loadErr}
	}
	if appConfig.HTTPTimeout < 0 || appConfig.IntervalMinutes < 0 {
		return appConfig, &ConfigError{Err: fmt.Errorf("OFFLOAD_HTTP_TIMEOUT and OFFLOAD_INTERVAL must not be negative")}
	}

	return appConfig, nil
}

// configFiles returns the config files named in OFFLOAD_CONFIG_FILE, if any.
func configFiles() []string {
	raw := strings.TrimSpace(os.Getenv("OFFLOAD_CONFIG_FILE"))
	if raw == "" {
		return nil
	}
	files := make([]string, 0)
	for _, f := range strings.Split(raw, ",") {
		if f = strings.TrimSpace(f); f != "" {
			files = append(files, f)
		}
	}
	return files
}

func (c AppConfig) ConfigStringArray() []string {
	configStrArr := make([]string, 0)
	configStrArr = append(configStrArr, fmt.Sprintf("  - AWSRegion: %s", c.Region))
	configStrArr = append(configStrArr, fmt.Sprintf("  - AccessKeyID: %s", maskSecret(c.AccessKeyID)))
	configStrArr = append(configStrArr, fmt.Sprintf("  - SecretAccessKey: %s", maskSecret(c.SecretAccessKey)))
	configStrArr = append(configStrArr, fmt.Sprintf("  - Bucket: %s", c.BucketName))
	configStrArr = append(configStrArr, fmt.Sprintf("  - SourceFolder: %s", c.SourceFolder))
	configStrArr = append(configStrArr, fmt.Sprintf("  - DeleteAfterUpload: %t", c.DeleteAfterUpload))

	if c.KeyPrefix != "" {
		configStrArr = append(configStrArr, fmt.Sprintf("  - KeyPrefix: %s", c.KeyPrefix))
	}
	if c.Endpoint != "" {
		configStrArr = append(configStrArr, fmt.Sprintf("  - Endpoint: %s (path style: %t)", c.Endpoint, c.UsePathStyle))
	}
	if c.IntervalMinutes > 0 {
		configStrArr = append(configStrArr, fmt.Sprintf("  - Interval: every %d minute(s)", c.IntervalMinutes))
	}
	if c.SNSTopic != "" {
		configStrArr = append(configStrArr, fmt.Sprintf("  - SNSTopic: %s", c.SNSTopic))
	}

	return configStrArr
}

func maskSecret(s string) string {
	if len(s) <= 4 {
		return strings.Repeat("*", len(s))
	}
	return strings.Repeat("*", len(s)-4) + s[len(s)-4:]
}
