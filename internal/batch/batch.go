package batch

import (
	"bytes"

	"github.com/google/uuid"
	"github.com/kzmha/spotify-lake/bridge-go/internal/model"
)

// Batch accumulates events between flushes. Insertion order is preserved and
// becomes line order in the stored object.
type Batch struct {
	id     string
	events []model.Event
}

// New creates an empty batch with a fresh identifier.
func New() *Batch {
	return &Batch{id: uuid.New().String()}
}

// ID returns the batch identifier, stable until the next Reset.
func (b *Batch) ID() string {
	return b.id
}

// Append adds one event to the end of the batch.
func (b *Batch) Append(e model.Event) {
	b.events = append(b.events, e)
}

// Len returns the number of buffered events.
func (b *Batch) Len() int {
	return len(b.events)
}

// Bytes encodes the batch as newline-delimited JSON, one event per line,
// no trailing newline.
func (b *Batch) Bytes() []byte {
	lines := make([][]byte, len(b.events))
	for i, e := range b.events {
		lines[i] = []byte(e)
	}
	return bytes.Join(lines, []byte("\n"))
}

// Reset discards all buffered events and assigns a new identifier.
func (b *Batch) Reset() {
	b.id = uuid.New().String()
	b.events = nil
}
