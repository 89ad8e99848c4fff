package events

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"strconv"
	"time"

	"github.com/SergeyBogomolovv/payment-reconciler/internal/config"
	"github.com/SergeyBogomolovv/payment-reconciler/internal/entities"

	"github.com/go-playground/validator/v10"
	"github.com/segmentio/kafka-go"
)

// SideEffectFailure побочный эффект оплаченного заказа, который нужно применить повторно.
type SideEffectFailure struct {
	OrderID  int64               `json:"order_id" validate:"required,gt=0"`
	Effect   entities.SideEffect `json:"effect" validate:"required,oneof=stock coupon"`
	Error    string              `json:"error"`
	FailedAt time.Time           `json:"failed_at"`
	Attempt  int                 `json:"attempt" validate:"gte=0"`
}

var validate = validator.New()

// Decode разбирает и валидирует значение сообщения.
func Decode(value []byte) (SideEffectFailure, error) {
	var f SideEffectFailure
	if err := json.Unmarshal(value, &f); err != nil {
		return f, fmt.Errorf("failed to unmarshal side effect failure: %w", err)
	}
	if err := validate.Struct(f); err != nil {
		return f, fmt.Errorf("invalid side effect failure: %w", err)
	}
	return f, nil
}

type messageWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

// Publisher отправляет упавшие побочные эффекты в топик повторов.
type Publisher struct {
	logger *slog.Logger
	topic  string
	writer messageWriter
	now    func() time.Time
}

func NewPublisher(logger *slog.Logger, cfg config.Kafka) *Publisher {
	return newPublisher(logger, cfg.RetryTopic, &kafka.Writer{
		Addr:                   kafka.TCP(cfg.Brokers...),
		Balancer:               &kafka.Hash{},
		BatchTimeout:           cfg.BatchTimeout,
		RequiredAcks:           kafka.RequireAll,
		AllowAutoTopicCreation: true,
	})
}

func newPublisher(logger *slog.Logger, topic string, writer messageWriter) *Publisher {
	return &Publisher{
		logger: logger.With(slog.String("component", "failure_publisher")),
		topic:  topic,
		writer: writer,
		now:    time.Now,
	}
}

func (p *Publisher) PublishFailure(ctx context.Context, orderID int64, effect entities.SideEffect, cause error) error {
	return p.Publish(ctx, SideEffectFailure{
		OrderID:  orderID,
		Effect:   effect,
		Error:    cause.Error(),
		FailedAt: p.now().UTC(),
	})
}

// Publish пишет f с ключом id заказа, повторы одного заказа идут в одну партицию.
func (p *Publisher) Publish(ctx context.Context, f SideEffectFailure) error {
	value, err := json.Marshal(f)
	if err != nil {
		return fmt.Errorf("failed to marshal side effect failure: %w", err)
	}
	msg := kafka.Message{
		Topic: p.topic,
		Key:   []byte(strconv.FormatInt(f.OrderID, 10)),
		Value: value,
	}
	if err := p.writer.WriteMessages(ctx, msg); err != nil {
		return fmt.Errorf("failed to write side effect failure: %w", err)
	}
	p.logger.DebugContext(ctx, "side effect queued for retry",
		slog.Int64("order_id", f.OrderID), slog.String("effect", string(f.Effect)), slog.Int("attempt", f.Attempt))
	return nil
}

func (p *Publisher) Close() error {
	return p.writer.Close()
}
