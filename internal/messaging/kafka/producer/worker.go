package producer

import (
	"context"
	"time"

	"go-payroll/internal/messaging/kafka"

	"go.uber.org/zap"
)

const (
	defaultPollInterval = 3 * time.Second
	defaultBatchSize    = 50
)

// OutboxWorker membaca event pending dari tabel outbox lalu
// meneruskannya ke Kafka satu per satu.
type OutboxWorker struct {
	repo      kafka.OutboxRepository
	publisher Publisher
	logger    *zap.Logger

	pollInterval time.Duration
	batchSize    int
}

func NewOutboxWorker(repo kafka.OutboxRepository, publisher Publisher, logger *zap.Logger) *OutboxWorker {
	return &OutboxWorker{
		repo:         repo,
		publisher:    publisher,
		logger:       logger.Named("outbox_worker"),
		pollInterval: defaultPollInterval,
		batchSize:    defaultBatchSize,
	}
}

func (w *OutboxWorker) Run(ctx context.Context) error {
	ticker := time.NewTicker(w.pollInterval)
	defer ticker.Stop()

	w.logger.Info("outbox worker started",
		zap.Duration("poll_interval", w.pollInterval),
		zap.Int("batch_size", w.batchSize),
	)

	for {
		select {
		case <-ctx.Done():
			w.logger.Info("outbox worker stopped")
			return ctx.Err()
		case <-ticker.C:
			if err := w.drainOnce(ctx); err != nil {
				w.logger.Error("outbox drain failed", zap.Error(err))
			}
		}
	}
}

func (w *OutboxWorker) drainOnce(ctx context.Context) error {
	events, err := w.repo.ListPending(ctx, w.batchSize)
	if err != nil {
		return err
	}

	for _, event := range events {
		if err := w.publisher.Publish(ctx, event.Topic, event.AggregateID, event.Payload); err != nil {
			if markErr := w.repo.MarkFailed(ctx, event.ID, err.Error()); markErr != nil {
				w.logger.Error("mark failed error",
					zap.String("outbox_id", event.ID),
					zap.Error(markErr),
				)
			}
			continue
		}

		if err := w.repo.MarkSent(ctx, event.ID); err != nil {
			w.logger.Error("mark sent error",
				zap.String("outbox_id", event.ID),
				zap.Error(err),
			)
		}
	}

	return nil
}
