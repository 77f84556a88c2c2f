package kafka

import (
	"context"
	"fmt"
	"sync"
	"time"

	kafkago "github.com/segmentio/kafka-go"
)

// Message represents a Kafka message.
type Message struct {
	Key     []byte
	Value   []byte
	Headers map[string]string
}

// writer is the subset of *kafkago.Writer the producer relies on.
type writer interface {
	WriteMessages(ctx context.Context, msgs ...kafkago.Message) error
	Close() error
}

// Producer wraps kafka-go writers, one per topic, for publishing messages.
type Producer struct {
	mu        sync.Mutex
	writers   map[string]writer
	brokers   []string
	newWriter func(topic string) writer
}

// NewProducer creates a new Producer with the given configuration.
// Writers are created lazily on first publish to a topic.
func NewProducer(cfg Config) *Producer {
	batchTimeout := cfg.BatchTimeout
	if batchTimeout <= 0 {
		batchTimeout = 10 * time.Millisecond
	}
	brokers := cfg.Brokers

	return &Producer{
		writers: make(map[string]writer),
		brokers: brokers,
		newWriter: func(topic string) writer {
			return &kafkago.Writer{
				Addr:                   kafkago.TCP(brokers...),
				Topic:                  topic,
				Balancer:               &kafkago.LeastBytes{},
				BatchTimeout:           batchTimeout,
				RequiredAcks:           kafkago.RequireAll,
				AllowAutoTopicCreation: true,
			}
		},
	}
}

// Publish sends messages to the specified topic.
func (p *Producer) Publish(ctx context.Context, topic string, messages ...Message) error {
	if len(messages) == 0 {
		return nil
	}
	w := p.getOrCreateWriter(topic)

	kafkaMessages := make([]kafkago.Message, 0, len(messages))
	for _, msg := range messages {
		km := kafkago.Message{
			Key:   msg.Key,
			Value: msg.Value,
		}
		for k, v := range msg.Headers {
			km.Headers = append(km.Headers, kafkago.Header{
				Key:   k,
				Value: []byte(v),
			})
		}
		kafkaMessages = append(kafkaMessages, km)
	}

	if err := w.WriteMessages(ctx, kafkaMessages...); err != nil {
		return fmt.Errorf("kafka publish to %s: %w", topic, err)
	}
	return nil
}

// Close closes all writers.
func (p *Producer) Close() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	var firstErr error
	for topic, w := range p.writers {
		if err := w.Close(); err != nil && firstErr == nil {
			firstErr = fmt.Errorf("closing writer for topic %s: %w", topic, err)
		}
	}
	p.writers = make(map[string]writer)
	return firstErr
}

func (p *Producer) getOrCreateWriter(topic string) writer {
	p.mu.Lock()
	defer p.mu.Unlock()

	if w, ok := p.writers[topic]; ok {
		return w
	}
	w := p.newWriter(topic)
	p.writers[topic] = w
	return w
}
