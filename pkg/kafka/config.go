package kafka

import "time"

// Config holds Kafka connection parameters.
type Config struct {
	Brokers []string

	// BatchTimeout bounds how long the writer buffers before flushing.
	// Zero means 10ms.
	BatchTimeout time.Duration
}

// Enabled reports whether at least one broker is configured.
func (c Config) Enabled() bool {
	for _, b := range c.Brokers {
		if b != "" {
			return true
		}
	}
	return false
}
