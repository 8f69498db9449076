package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"

	"github.com/joho/godotenv"

	"github.com/imamik/csvgen/internal/table"
)

// Environment variables read by LoadSettings.
const (
	EnvMaxRows     = "CSVGEN_MAX_ROWS"
	EnvS3Endpoint  = "CSVGEN_S3_ENDPOINT"
	EnvS3Region    = "CSVGEN_S3_REGION"
	EnvS3AccessKey = "CSVGEN_S3_ACCESS_KEY"
	EnvS3SecretKey = "CSVGEN_S3_SECRET_KEY"
	EnvS3PathStyle = "CSVGEN_S3_PATH_STYLE"
)

// DefaultEnvFile is loaded when present.
const DefaultEnvFile = ".env"

// DefaultS3Region is used when no region is configured.
const DefaultS3Region = "us-east-1"

// Settings holds runtime options.
type Settings struct {
	MaxRows int

	S3Endpoint  string
	S3Region    string
	S3AccessKey string
	S3SecretKey string
	S3PathStyle bool
}

// S3Enabled reports whether credentials for object storage are configured.
func (s *Settings) S3Enabled() bool {
	return s.S3AccessKey != "" && s.S3SecretKey != ""
}

// LoadSettings reads settings from the environment. If envFile exists it is
// loaded first; variables already set in the environment take precedence.
func LoadSettings(envFile string) (*Settings, error) {
	if envFile != "" {
		if err := godotenv.Load(envFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("failed to load %s: %w", envFile, err)
		}
	}

	s := &Settings{
		MaxRows:     table.DefaultMaxRows,
		S3Endpoint:  os.Getenv(EnvS3Endpoint),
		S3Region:    os.Getenv(EnvS3Region),
		S3AccessKey: os.Getenv(EnvS3AccessKey),
		S3SecretKey: os.Getenv(EnvS3SecretKey),
	}
	if s.S3Region == "" {
		s.S3Region = DefaultS3Region
	}

	if v := os.Getenv(EnvMaxRows); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n <= 0 {
			return nil, fmt.Errorf("%s must be a positive integer, got %q", EnvMaxRows, v)
		}
		s.MaxRows = n
	}

	if v := os.Getenv(EnvS3PathStyle); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return nil, fmt.Errorf("%s must be a boolean, got %q", EnvS3PathStyle, v)
		}
		s.S3PathStyle = b
	}

	return s, nil
}
