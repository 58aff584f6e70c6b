package producer

import (
	"context"
	"time"

	"github.com/aakash8113/DayFlow/internal/messaging/kafka"

	kafkago "github.com/segmentio/kafka-go"
	"go.uber.org/zap"
)

const drainBatchSize = 50

// ProcessOutboxEvents polls the outbox table and relays staged events to
// Kafka until the context is cancelled. Failed publishes are left for the
// next pass; the repository schedules their retry backoff.
func ProcessOutboxEvents(
	ctx context.Context,
	repo kafka.OutboxRepository,
	writer *kafkago.Writer,
	logger *zap.Logger,
	pollInterval time.Duration,
) {
	if pollInterval <= 0 {
		pollInterval = 3 * time.Second
	}

	log := logger.Named("kafka.producer.worker")
	ticker := time.NewTicker(pollInterval)
	defer ticker.Stop()

	log.Info("outbox worker started", zap.Duration("poll_interval", pollInterval))

	for {
		select {
		case <-ctx.Done():
			log.Info("outbox worker stopped")
			return
		case <-ticker.C:
			if err := drainOutbox(ctx, repo, writer, log); err != nil {
				log.Error("outbox drain failed", zap.Error(err))
			}
		}
	}
}

func drainOutbox(ctx context.Context, repo kafka.OutboxRepository, writer *kafkago.Writer, log *zap.Logger) error {
	events, err := repo.ListPending(ctx, drainBatchSize)
	if err != nil {
		return err
	}
	if len(events) == 0 {
		return nil
	}

	log.Info("draining outbox", zap.Int("count", len(events)))

	for _, event := range events {
		relayEvent(ctx, repo, writer, log, event)
	}
	return nil
}

func relayEvent(ctx context.Context, repo kafka.OutboxRepository, writer *kafkago.Writer, log *zap.Logger, event kafka.OutboxEvent) {
	if err := publishEvent(ctx, writer, event); err != nil {
		log.Error("publish outbox event failed",
			zap.String("outbox_id", event.ID),
			zap.String("event_type", event.EventType),
			zap.String("topic", event.Topic),
			zap.Error(err),
		)
		_ = repo.MarkFailed(ctx, event.ID, err.Error())
		return
	}

	if err := repo.MarkSent(ctx, event.ID); err != nil {
		// The broker has the message; the row will be re-sent next pass and
		// consumers are expected to deduplicate on the event id.
		log.Error("mark outbox sent failed",
			zap.String("outbox_id", event.ID),
			zap.Error(err),
		)
		return
	}

	log.Info("outbox event sent",
		zap.String("outbox_id", event.ID),
		zap.String("event_type", event.EventType),
		zap.String("topic", event.Topic),
	)
}
