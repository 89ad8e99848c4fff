package handler

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/SergeyBogomolovv/payment-reconciler/internal/config"
	"github.com/SergeyBogomolovv/payment-reconciler/internal/entities"
	"github.com/SergeyBogomolovv/payment-reconciler/internal/events"
	"github.com/SergeyBogomolovv/payment-reconciler/pkg/utils"

	"github.com/segmentio/kafka-go"
)

// MaxSideEffectAttempts сколько раз сбой возвращается в очередь до DLQ.
const MaxSideEffectAttempts = 5

type SideEffectApplier interface {
	ApplySideEffect(ctx context.Context, orderID int64, effect entities.SideEffect) error
}

type FailureRequeuer interface {
	Publish(ctx context.Context, f events.SideEffectFailure) error
}

type messageReader interface {
	FetchMessage(ctx context.Context) (kafka.Message, error)
	CommitMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

type messageWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

type retryConsumer struct {
	dlq      messageWriter
	reader   messageReader
	logger   *slog.Logger
	applier  SideEffectApplier
	requeuer FailureRequeuer
	backoff  utils.RetryConfig
	now      func() time.Time
	sleep    func(ctx context.Context, d time.Duration) error
}

func NewRetryConsumer(logger *slog.Logger, cfg config.Kafka, applier SideEffectApplier, requeuer FailureRequeuer) *retryConsumer {
	reader := kafka.NewReader(kafka.ReaderConfig{
		Brokers: cfg.Brokers,
		GroupID: cfg.GroupID,
		Topic:   cfg.RetryTopic,
		MaxWait: cfg.ReaderMaxWait,
	})
	dlq := &kafka.Writer{
		Addr:         kafka.TCP(cfg.Brokers...),
		Balancer:     &kafka.LeastBytes{},
		BatchTimeout: cfg.BatchTimeout,
	}
	backoff := utils.RetryConfig{
		InitialDelay: cfg.RetryBackoff,
		MaxDelay:     cfg.RetryMaxBackoff,
		Multiplier:   2,
	}
	return newRetryConsumer(logger, reader, dlq, applier, requeuer, backoff)
}

func newRetryConsumer(logger *slog.Logger, reader messageReader, dlq messageWriter, applier SideEffectApplier, requeuer FailureRequeuer, backoff utils.RetryConfig) *retryConsumer {
	return &retryConsumer{
		logger:   logger.With(slog.String("handler", "kafka")),
		reader:   reader,
		dlq:      dlq,
		applier:  applier,
		requeuer: requeuer,
		backoff:  backoff,
		now:      time.Now,
		sleep:    utils.Sleep,
	}
}

func (h *retryConsumer) Consume(ctx context.Context) {
	for {
		m, err := h.reader.FetchMessage(ctx)
		if err != nil {
			if errors.Is(err, io.EOF) || errors.Is(err, context.Canceled) {
				break
			} else {
				h.logger.Error("failed to fetch message", slog.Any("error", err))
				continue
			}
		}

		if err := h.handleMessage(ctx, m); err != nil {
			// без коммита: сообщение вернётся после перезапуска
			if ctx.Err() != nil {
				break
			}
			h.logger.Error("failed to handle message", slog.Any("error", err))

			// В библиотеке уже есть retry
			if err := h.WriteToDLQ(ctx, m); err != nil {
				h.logger.Error("failed to write message to DLQ", slog.Any("error", err))
				continue
			}
			retriesDLQ.Inc()
		}

		if err := h.reader.CommitMessages(ctx, m); err != nil {
			commitErrors.Inc()
			h.logger.Error("failed to commit message", slog.Any("error", err))
		}
	}
}

// handleMessage возвращает ошибку, если сообщение нужно отправить в DLQ,
// или ошибку контекста, если ctx отменён до срока повтора.
func (h *retryConsumer) handleMessage(ctx context.Context, m kafka.Message) error {
	start := time.Now()
	defer func() { retryProcessingDuration.Observe(time.Since(start).Seconds()) }()

	f, err := events.Decode(m.Value)
	if err != nil {
		return err
	}

	logger := h.logger.With(slog.Int64("order_id", f.OrderID), slog.String("effect", string(f.Effect)))

	// пока ждём, раздел топика не читается
	if wait := h.dueAt(f).Sub(h.now()); wait > 0 {
		logger.DebugContext(ctx, "waiting before retry", slog.Duration("wait", wait), slog.Int("attempt", f.Attempt))
		if err := h.sleep(ctx, wait); err != nil {
			return err
		}
	}

	err = h.applier.ApplySideEffect(ctx, f.OrderID, f.Effect)
	if err == nil {
		retriesProcessed.Inc()
		logger.InfoContext(ctx, "side effect applied from retry queue", slog.Int("attempt", f.Attempt))
		return nil
	}
	retriesFailed.Inc()

	f.Attempt++
	if f.Attempt >= MaxSideEffectAttempts || errors.Is(err, entities.ErrOrderNotFound) {
		return fmt.Errorf("side effect %s of order %d failed after %d attempts: %w", f.Effect, f.OrderID, f.Attempt, err)
	}

	f.Error = err.Error()
	f.FailedAt = time.Now().UTC()
	if err := h.requeuer.Publish(ctx, f); err != nil {
		return fmt.Errorf("failed to requeue side effect: %w", err)
	}
	logger.WarnContext(ctx, "side effect requeued", slog.Int("attempt", f.Attempt), slog.Any("error", err))
	return nil
}

// dueAt срок повтора: FailedAt плюс задержка, растущая с Attempt.
func (h *retryConsumer) dueAt(f events.SideEffectFailure) time.Time {
	return f.FailedAt.Add(utils.Backoff(h.backoff, f.Attempt))
}

func (h *retryConsumer) WriteToDLQ(ctx context.Context, m kafka.Message) error {
	m.Topic = fmt.Sprintf("%s-dlq", m.Topic)
	return h.dlq.WriteMessages(ctx, m)
}

func (h *retryConsumer) Close() error {
	if err := h.reader.Close(); err != nil {
		return err
	}
	return h.dlq.Close()
}
