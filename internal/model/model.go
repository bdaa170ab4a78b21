package model

import (
	"bytes"
	"encoding/json"
	"errors"
)

// Event is a single record consumed from the topic. No schema is enforced;
// any valid JSON value is accepted and carried to the bronze layer unchanged.
type Event []byte

var ErrNotJSON = errors.New("event is not valid JSON")

// ParseEvent validates raw message bytes as JSON and compacts them onto a
// single line, so each event occupies exactly one line of the stored object.
func ParseEvent(raw []byte) (Event, error) {
	if !json.Valid(raw) {
		return nil, ErrNotJSON
	}
	var buf bytes.Buffer
	if err := json.Compact(&buf, raw); err != nil {
		return nil, err
	}
	return Event(buf.Bytes()), nil
}

// String returns the event as JSON text.
func (e Event) String() string {
	return string(e)
}
