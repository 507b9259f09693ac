package producer

import (
	"context"
	"time"

	"hr-module/internal/messaging/kafka"

	kafkago "github.com/segmentio/kafka-go"
	"go.uber.org/zap"
)

const (
	defaultPollInterval = 3 * time.Second
	defaultBatchSize    = 50
)

// Relay drains pending outbox rows to Kafka on a fixed poll interval.
// Rows are marked sent or failed individually; a failed row stays in
// the table with its error and is retried on the next sweep.
type Relay struct {
	repo      kafka.OutboxRepository
	writer    *kafkago.Writer
	interval  time.Duration
	batchSize int
	logger    *zap.Logger
}

func NewRelay(repo kafka.OutboxRepository, writer *kafkago.Writer, logger *zap.Logger) *Relay {
	return &Relay{
		repo:      repo,
		writer:    writer,
		interval:  defaultPollInterval,
		batchSize: defaultBatchSize,
		logger:    logger.Named("outbox.relay"),
	}
}

func (r *Relay) WithInterval(d time.Duration) *Relay {
	if d > 0 {
		r.interval = d
	}
	return r
}

func (r *Relay) WithBatchSize(n int) *Relay {
	if n > 0 {
		r.batchSize = n
	}
	return r
}

// Run blocks until ctx is cancelled.
func (r *Relay) Run(ctx context.Context) {
	ticker := time.NewTicker(r.interval)
	defer ticker.Stop()

	r.logger.Info("outbox relay started",
		zap.Duration("poll_interval", r.interval),
		zap.Int("batch_size", r.batchSize),
	)

	for {
		select {
		case <-ctx.Done():
			r.logger.Info("outbox relay stopped")
			return
		case <-ticker.C:
			if err := r.sweep(ctx); err != nil {
				r.logger.Error("outbox sweep failed", zap.Error(err))
			}
		}
	}
}

func (r *Relay) sweep(ctx context.Context) error {
	events, err := r.repo.ListPending(ctx, r.batchSize)
	if err != nil {
		return err
	}
	if len(events) == 0 {
		return nil
	}

	r.logger.Debug("draining outbox", zap.Int("pending", len(events)))

	for _, event := range events {
		if err := publish(ctx, r.writer, event); err != nil {
			r.logger.Error("publish failed",
				zap.String("outbox_id", event.ID),
				zap.String("topic", event.Topic),
				zap.Error(err),
			)
			_ = r.repo.MarkFailed(ctx, event.ID, err.Error())
			continue
		}

		if err := r.repo.MarkSent(ctx, event.ID); err != nil {
			// The message went out; the row will be re-published on the
			// next sweep, so consumers must tolerate duplicates.
			r.logger.Error("mark sent failed",
				zap.String("outbox_id", event.ID),
				zap.Error(err),
			)
			continue
		}

		r.logger.Info("event published",
			zap.String("outbox_id", event.ID),
			zap.String("event_type", event.EventType),
			zap.String("topic", event.Topic),
		)
	}

	return nil
}
