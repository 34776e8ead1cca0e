package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

const (
	EnvInitialCapacity = "LISTSORT_INITIAL_CAPACITY"
	EnvLogMicros       = "LISTSORT_LOG_MICROS"
	EnvMinioURL        = "MINIO_URL"
	EnvMinioAccessKey  = "MINIO_ACCESS_KEY_ID"
	EnvMinioSecretKey  = "MINIO_SECRET_ACCESS_KEY"
	EnvMinioBucketName = "MINIO_BUCKET_NAME"
	EnvMinioUseSSL     = "MINIO_USE_SSL"
)

const defaultInitialCapacity = 10

type Minio struct {
	Endpoint   string
	AccessKey  string
	SecretKey  string
	BucketName string
	UseSSL     bool
}

type Config struct {
	// capacity of the list before elements are loaded into it
	InitialCapacity int
	LogMicros       bool
	Minio           Minio
}

// Load reads the configuration from the environment. If envFile is not empty,
// it is loaded first; variables already set in the environment take precedence.
func Load(envFile string) (*Config, error) {
	if envFile != "" {
		if err := godotenv.Load(envFile); err != nil {
			return nil, fmt.Errorf("loading %s: %w", envFile, err)
		}
	}

	initialCapacity, err := intFromEnv(EnvInitialCapacity, defaultInitialCapacity)
	if err != nil {
		return nil, err
	}
	if initialCapacity < 0 {
		return nil, fmt.Errorf("%s must not be negative, got %d", EnvInitialCapacity, initialCapacity)
	}
	logMicros, err := boolFromEnv(EnvLogMicros, true)
	if err != nil {
		return nil, err
	}
	useSSL, err := boolFromEnv(EnvMinioUseSSL, true)
	if err != nil {
		return nil, err
	}

	return &Config{
		InitialCapacity: initialCapacity,
		LogMicros:       logMicros,
		Minio: Minio{
			Endpoint:   os.Getenv(EnvMinioURL),
			AccessKey:  os.Getenv(EnvMinioAccessKey),
			SecretKey:  os.Getenv(EnvMinioSecretKey),
			BucketName: os.Getenv(EnvMinioBucketName),
			UseSSL:     useSSL,
		},
	}, nil
}

// Missing lists the names of the MinIO variables that are not set.
func (m Minio) Missing() []string {
	var missing []string
	for _, v := range []struct{ name, value string }{
		{EnvMinioURL, m.Endpoint},
		{EnvMinioAccessKey, m.AccessKey},
		{EnvMinioSecretKey, m.SecretKey},
		{EnvMinioBucketName, m.BucketName},
	} {
		if v.value == "" {
			missing = append(missing, v.name)
		}
	}
	return missing
}

func intFromEnv(name string, def int) (int, error) {
	value := os.Getenv(name)
	if value == "" {
		return def, nil
	}
	n, err := strconv.Atoi(value)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", name, err)
	}
	return n, nil
}

func boolFromEnv(name string, def bool) (bool, error) {
	value := os.Getenv(name)
	if value == "" {
		return def, nil
	}
	b, err := strconv.ParseBool(value)
	if err != nil {
		return false, fmt.Errorf("%s: %w", name, err)
	}
	return b, nil
}
