package kafka

import (
	"context"
	"encoding/json"
	"time"

	"github.com/rekberinx/rekber-bot/internal/domain"
	"github.com/segmentio/kafka-go"
)

type KafkaPublisher struct {
	writer *kafka.Writer
	topic  string
}

var _ domain.PublisherPort = (*KafkaPublisher)(nil)

func NewKafkaPublisher(brokers []string, topic string) *KafkaPublisher {
	return &KafkaPublisher{
		writer: &kafka.Writer{
			Addr:     kafka.TCP(brokers...),
			Topic:    topic,
			Balancer: &kafka.LeastBytes{},
		},
		topic: topic,
	}
}

func (k *KafkaPublisher) Publish(topic string, msgs ...domain.Message) error {
	var km []kafka.Message
	for _, m := range msgs {
		km = append(km, kafka.Message{
			Key:   m.Key,
			Value: m.Value,
			Time:  time.Now(),
		})
	}
	return k.writer.WriteMessages(context.Background(), km...)
}

// PublishTransaction emits one lifecycle event, keyed by transaction code so
// all events for a transaction land on the same partition in order.
func (k *KafkaPublisher) PublishTransaction(event TransactionEvent) error {
	msg, err := json.Marshal(event)
	if err != nil {
		return err
	}

	return k.Publish(k.topic, domain.Message{
		Key:   []byte(event.TxCode),
		Value: msg,
	})
}
