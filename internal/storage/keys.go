package storage

import (
	"fmt"
	"time"
)

// PartitionKey locates one batch object in the lake. The date and hour
// components partition the bucket for time-based querying downstream.
type PartitionKey struct {
	Layer  string    // lake tier, e.g. "bronze"
	Prefix string    // file name prefix, e.g. "spotify_events"
	Time   time.Time // wall-clock flush time
}

// Key renders the object key. All components derive from the UTC value of
// Time, with second resolution in the file name.
func (k PartitionKey) Key() string {
	t := k.Time.UTC()
	return fmt.Sprintf("%s/date=%s/hour=%s/%s_%s.json",
		k.Layer,
		t.Format("2006-01-02"),
		t.Format("15"),
		k.Prefix,
		t.Format("2006-01-02T15-04-05"),
	)
}
