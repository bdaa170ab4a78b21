package ingestion

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/kzmha/spotify-lake/bridge-go/internal/batch"
	"github.com/kzmha/spotify-lake/bridge-go/internal/model"
	"github.com/kzmha/spotify-lake/bridge-go/internal/retry"
	"github.com/kzmha/spotify-lake/bridge-go/internal/storage"
)

const (
	layerName  = "bronze"
	filePrefix = "spotify_events"

	// Budget for flushing a partial batch after the loop context is gone.
	shutdownFlushTimeout = 10 * time.Second
)

// Source yields events from the topic subscription. Commit acknowledges
// everything fetched since the previous Commit.
type Source interface {
	Next(ctx context.Context) (model.Event, error)
	Commit(ctx context.Context) error
}

// ObjectStorage writes batch payloads to object storage.
type ObjectStorage interface {
	Put(ctx context.Context, key string, data io.Reader, size int64, metadata map[string]string) error
}

// Service runs the consume, batch, flush loop.
type Service struct {
	source    Source
	storage   ObjectStorage
	batchSize int

	buf *batch.Batch
	now func() time.Time

	uploadAttempts int
	uploadBackoff  time.Duration
}

func NewService(source Source, storage ObjectStorage, batchSize int) *Service {
	return &Service{
		source:         source,
		storage:        storage,
		batchSize:      batchSize,
		buf:            batch.New(),
		now:            time.Now,
		uploadAttempts: 5,
		uploadBackoff:  500 * time.Millisecond,
	}
}

// Run consumes events until ctx is canceled. A batch is flushed as soon as it
// reaches the configured size; on shutdown any partial batch is flushed before
// returning. Offsets are committed only after a successful upload, so delivery
// is at-least-once: a crash between upload and commit re-delivers the batch.
func (s *Service) Run(ctx context.Context) error {
	for {
		event, err := s.source.Next(ctx)
		if err != nil {
			if errors.Is(err, context.Canceled) {
				return s.drain()
			}
			return fmt.Errorf("consume: %w", err)
		}

		s.buf.Append(event)

		if s.buf.Len() >= s.batchSize {
			if err := s.flush(ctx); err != nil {
				return err
			}
		}
	}
}

// drain flushes whatever is still buffered once the loop context is canceled.
func (s *Service) drain() error {
	if s.buf.Len() == 0 {
		return nil
	}

	// The loop context is already canceled, so the final flush runs under its
	// own deadline.
	ctx, cancel := context.WithTimeout(context.Background(), shutdownFlushTimeout)
	defer cancel()

	slog.InfoContext(ctx, "flushing partial batch before shutdown", "count", s.buf.Len())
	return s.flush(ctx)
}

func (s *Service) flush(ctx context.Context) error {
	key := storage.PartitionKey{
		Layer:  layerName,
		Prefix: filePrefix,
		Time:   s.now().UTC(),
	}.Key()

	payload := s.buf.Bytes()
	metadata := map[string]string{"Batch-Id": s.buf.ID()}

	err := retry.Do(ctx, s.uploadAttempts, s.uploadBackoff, func() error {
		return s.storage.Put(ctx, key, bytes.NewReader(payload), int64(len(payload)), metadata)
	})
	if err != nil {
		return fmt.Errorf("upload batch: %w", err)
	}

	slog.InfoContext(ctx, "uploaded batch", "count", s.buf.Len(), "key", key, "batch_id", s.buf.ID())

	// A failed commit after a successful upload only means the batch may be
	// re-delivered on restart.
	if err := s.source.Commit(ctx); err != nil {
		slog.WarnContext(ctx, "offset commit failed, batch may be re-delivered", "batch_id", s.buf.ID(), "error", err)
	}

	s.buf.Reset()
	return nil
}
