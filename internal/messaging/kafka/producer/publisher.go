package producer

import (
	"context"

	kafkago "github.com/segmentio/kafka-go"
	"go.uber.org/zap"
)

//go:generate mockgen -source=publisher.go -destination=mock/publisher_mock.go -package=mock

type Publisher interface {
	Publish(ctx context.Context, topic string, key string, payload []byte) error
	Close() error
}

type kafkaPublisher struct {
	writer *kafkago.Writer
	logger *zap.Logger
}

func NewKafkaPublisher(writer *kafkago.Writer, logger *zap.Logger) Publisher {
	return &kafkaPublisher{
		writer: writer,
		logger: logger.Named("kafka_publisher"),
	}
}

func (p *kafkaPublisher) Publish(ctx context.Context, topic string, key string, payload []byte) error {
	msg := kafkago.Message{
		Topic: topic,
		Key:   []byte(key),
		Value: payload,
	}

	if err := p.writer.WriteMessages(ctx, msg); err != nil {
		p.logger.Error("publish failed",
			zap.String("topic", topic),
			zap.String("key", key),
			zap.Error(err),
		)
		return err
	}

	p.logger.Debug("message published",
		zap.String("topic", topic),
		zap.String("key", key),
	)
	return nil
}

func (p *kafkaPublisher) Close() error {
	return p.writer.Close()
}
