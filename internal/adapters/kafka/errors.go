package kafka

import "fmt"

// DecodeError marks a message that could not be parsed as a JSON event.
type DecodeError struct {
	Partition int
	Offset    int64
	Err       error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("kafka: undecodable message at partition %d offset %d: %v", e.Partition, e.Offset, e.Err)
}

func (e *DecodeError) Unwrap() error {
	return e.Err
}
