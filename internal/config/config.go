package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

type Config struct {
	Region       string
	AWSAccessKey string
	AWSSecretKey string
	S3Endpoint   string
	LanguageCode string
	KeyPrefix    string
	JobPrefix    string
}

func Load() *Config {
	return &Config{
		Region:       getEnv("AWS_REGION", "us-east-1"),
		AWSAccessKey: getEnv("AWS_ACCESS_KEY_ID", ""),
		AWSSecretKey: getEnv("AWS_SECRET_ACCESS_KEY", ""),
		S3Endpoint:   getEnv("S3_ENDPOINT", ""),
		LanguageCode: getEnv("TRANSCRIBE_LANGUAGE_CODE", "en-US"),
		KeyPrefix:    getEnv("TRANSCRIBE_KEY_PREFIX", "transcribe-temp"),
		JobPrefix:    getEnv("TRANSCRIBE_JOB_PREFIX", "transcribe-job"),
	}
}

// Tuning holds the transfer and polling knobs. They ship with defaults that
// match Amazon Transcribe's limits and only need a yaml file to override.
type Tuning struct {
	MultipartThresholdMB int64    `yaml:"multipart_threshold_mb"`
	PartSizeMB           int64    `yaml:"part_size_mb"`
	PollInitialSeconds   int      `yaml:"poll_initial_seconds"`
	PollMaxSeconds       int      `yaml:"poll_max_seconds"`
	PollMaxAttempts      int      `yaml:"poll_max_attempts"`
	MaxFileSizeMB        int64    `yaml:"max_file_size_mb"`
	AllowedExtensions    []string `yaml:"allowed_extensions"`
}

func DefaultTuning() *Tuning {
	return &Tuning{
		MultipartThresholdMB: 50,
		PartSizeMB:           8,
		PollInitialSeconds:   5,
		PollMaxSeconds:       30,
		PollMaxAttempts:      120,
		MaxFileSizeMB:        2 * 1024,
		AllowedExtensions: []string{
			"mp4", "mov", "avi", "flv", "mp3", "wav", "flac", "m4a", "webm", "mkv",
		},
	}
}

// LoadTuning reads the tuning file named by TRANSCRIBEFLOW_CONFIG_PATH.
// A missing file is not an error; defaults apply.
func LoadTuning() (*Tuning, error) {
	configPath := getEnv("TRANSCRIBEFLOW_CONFIG_PATH", "transcribeflow.yaml")

	data, err := os.ReadFile(configPath)
	if err != nil {
		if os.IsNotExist(err) {
			return DefaultTuning(), nil
		}
		return nil, fmt.Errorf("failed to read tuning config: %w", err)
	}

	tuning := DefaultTuning()
	if err := yaml.Unmarshal(data, tuning); err != nil {
		return nil, fmt.Errorf("failed to parse tuning config: %w", err)
	}

	return tuning, nil
}

func (t *Tuning) MultipartThresholdBytes() int64 { return t.MultipartThresholdMB * 1024 * 1024 }
func (t *Tuning) PartSizeBytes() int64           { return t.PartSizeMB * 1024 * 1024 }
func (t *Tuning) MaxFileSizeBytes() int64        { return t.MaxFileSizeMB * 1024 * 1024 }

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
