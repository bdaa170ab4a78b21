package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	"github.com/kzmha/spotify-lake/bridge-go/internal/adapters/kafka"
	"github.com/kzmha/spotify-lake/bridge-go/internal/config"
	"github.com/kzmha/spotify-lake/bridge-go/internal/exitcode"
	"github.com/kzmha/spotify-lake/bridge-go/internal/ingestion"
	"github.com/kzmha/spotify-lake/bridge-go/internal/storage"
)

func main() {
	// Configure the global logger
	slog.SetDefault(slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug})))

	// Ensure environment variables are loaded
	if err := godotenv.Load(); err != nil {
		slog.Warn("failed to load env vars", "error", err)
	}

	// Load and validate configuration before opening any connections
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(exitcode.ConfigError)
	}

	// Create a cancellable context (for graceful shutdown)
	ctx, cancel := signal.NotifyContext(context.Background(),
		syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	// Initialize MinIO client and ensure the bucket exists
	minioClient, err := storage.NewMinIOClient(ctx, storage.MinIOConfig{
		Endpoint:  cfg.MinIOEndpoint,
		AccessKey: cfg.MinIOAccessKey,
		SecretKey: cfg.MinIOSecretKey,
		Bucket:    cfg.MinIOBucket,
		UseSSL:    cfg.MinIOUseSSL,
	})
	if err != nil {
		slog.Error("failed to initialize minio client", "error", err)
		os.Exit(exitcode.StorageError)
	}

	consumer := kafka.NewConsumer(kafka.Config{
		BootstrapServer: cfg.KafkaBootstrapServer,
		Topic:           cfg.KafkaTopic,
		GroupID:         cfg.KafkaGroupID,
	})
	defer consumer.Close()

	svc := ingestion.NewService(consumer, minioClient, cfg.BatchSize)

	slog.Info("listening for events",
		"topic", cfg.KafkaTopic,
		"group_id", cfg.KafkaGroupID,
		"bucket", cfg.MinIOBucket,
		"batch_size", cfg.BatchSize,
	)

	if err := svc.Run(ctx); err != nil {
		slog.Error("application error", "error", err)
		os.Exit(exitcode.ApplicationError)
	}

	slog.Info("shutdown complete")
}
