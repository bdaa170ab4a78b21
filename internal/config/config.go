package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
)

// DefaultBatchSize is the flush threshold used when BATCH_SIZE is unset.
const DefaultBatchSize = 10

// Config holds application configuration.
type Config struct {
	MinIOBucket    string
	MinIOEndpoint  string
	MinIOAccessKey string
	MinIOSecretKey string
	MinIOUseSSL    bool

	KafkaTopic           string
	KafkaBootstrapServer string
	KafkaGroupID         string

	BatchSize int
}

type ErrMissingRequiredEnvVars struct {
	Names []string
}

func (e *ErrMissingRequiredEnvVars) Error() string {
	return fmt.Sprintf("required environment variables not set: %s", strings.Join(e.Names, ", "))
}

// Load reads configuration from environment variables.
// All missing required variables are reported together in a single error, so
// a broken deployment can be fixed in one pass.
func Load() (*Config, error) {
	config := Config{
		MinIOBucket:          os.Getenv("MINIO_BUCKET"),
		MinIOEndpoint:        os.Getenv("MINIO_ENDPOINT"),
		MinIOAccessKey:       os.Getenv("MINIO_ACCESS_KEY"),
		MinIOSecretKey:       os.Getenv("MINIO_SECRET_KEY"),
		MinIOUseSSL:          os.Getenv("MINIO_USE_SSL") == "true",
		KafkaTopic:           os.Getenv("KAFKA_TOPIC"),
		KafkaBootstrapServer: os.Getenv("KAFKA_BOOTSTRAP_SERVER"),
		KafkaGroupID:         os.Getenv("KAFKA_GROUP_ID"),
		BatchSize:            DefaultBatchSize,
	}

	required := []struct {
		name  string
		value string
	}{
		{"MINIO_BUCKET", config.MinIOBucket},
		{"MINIO_ENDPOINT", config.MinIOEndpoint},
		{"MINIO_ACCESS_KEY", config.MinIOAccessKey},
		{"MINIO_SECRET_KEY", config.MinIOSecretKey},
		{"KAFKA_TOPIC", config.KafkaTopic},
		{"KAFKA_BOOTSTRAP_SERVER", config.KafkaBootstrapServer},
		{"KAFKA_GROUP_ID", config.KafkaGroupID},
	}

	var missing []string
	for _, v := range required {
		if v.value == "" {
			missing = append(missing, v.name)
		}
	}
	if len(missing) > 0 {
		return nil, &ErrMissingRequiredEnvVars{Names: missing}
	}

	if raw := os.Getenv("BATCH_SIZE"); raw != "" {
		size, err := strconv.Atoi(raw)
		if err != nil {
			return nil, fmt.Errorf("BATCH_SIZE must be an integer, got %q", raw)
		}
		if size < 1 {
			return nil, fmt.Errorf("BATCH_SIZE must be at least 1, got %d", size)
		}
		config.BatchSize = size
	}

	return &config, nil
}
