package queue

import (
	"context"
	"crypto/tls"
	"log"
	"time"

	"github.com/segmentio/kafka-go"
	"github.com/segmentio/kafka-go/sasl/plain"
)

type Producer struct {
	writer *kafka.Writer
}

// NewProducer builds a writer for the event topic. SASL/TLS is enabled only
// when credentials are configured, so local brokers work over plaintext.
func NewProducer(broker, topic, username, password string) *Producer {
	if broker == "" {
		return nil
	}

	writer := &kafka.Writer{
		Addr:         kafka.TCP(broker),
		Topic:        topic,
		Balancer:     &kafka.LeastBytes{},
		RequiredAcks: kafka.RequireAll,
		Async:        false,
		WriteTimeout: 10 * time.Second,
	}

	if username != "" {
		writer.Transport = &kafka.Transport{
			SASL: plain.Mechanism{
				Username: username,
				Password: password,
			},
			TLS: &tls.Config{},
		}
	}

	return &Producer{writer: writer}
}

// PublishMessage never fails a request on broker trouble: events are a
// notification hook, not part of the persistence contract.
func (p *Producer) PublishMessage(key, value []byte) error {
	if p == nil || p.writer == nil {
		log.Println("Kafka producer not ready - skip publish")
		return nil
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := p.writer.WriteMessages(ctx, kafka.Message{
		Key:   key,
		Value: value,
		Time:  time.Now(),
	}); err != nil {
		log.Printf("publish %s failed: %v", key, err)
		return err
	}
	return nil
}
