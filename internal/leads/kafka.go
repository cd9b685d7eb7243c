package leads

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/segmentio/kafka-go"
)

// KafkaSink publishes events to a Kafka topic keyed by report id.
type KafkaSink struct {
	writer messageWriter
}

// messageWriter abstracts kafka.Writer for testability.
type messageWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

func NewKafkaSink(brokers []string, topic string) *KafkaSink {
	var addrs []string
	for _, b := range brokers {
		if b = strings.TrimSpace(b); b != "" {
			addrs = append(addrs, b)
		}
	}
	return &KafkaSink{writer: &kafka.Writer{
		Addr:                   kafka.TCP(addrs...),
		Topic:                  topic,
		Balancer:               &kafka.Hash{},
		RequiredAcks:           kafka.RequireAll,
		AllowAutoTopicCreation: true,
	}}
}

// newKafkaSinkWith is only for tests to inject a fake writer.
func newKafkaSinkWith(w messageWriter) *KafkaSink {
	return &KafkaSink{writer: w}
}

func (k *KafkaSink) Name() string { return "kafka" }

func (k *KafkaSink) Publish(ctx context.Context, ev Event) error {
	b, err := json.Marshal(ev)
	if err != nil {
		return fmt.Errorf("marshal: %w", err)
	}
	return k.writer.WriteMessages(ctx, kafka.Message{
		Key:   []byte(ev.ReportID),
		Value: b,
		Headers: []kafka.Header{
			{Key: "type", Value: []byte("lead.captured")},
		},
	})
}

func (k *KafkaSink) Close() error {
	return k.writer.Close()
}
