package events

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/SergeyBogomolovv/payment-reconciler/internal/entities"
	"github.com/segmentio/kafka-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeWriter struct {
	msgs   []kafka.Message
	err    error
	closed bool
}

func (w *fakeWriter) WriteMessages(_ context.Context, msgs ...kafka.Message) error {
	if w.err != nil {
		return w.err
	}
	w.msgs = append(w.msgs, msgs...)
	return nil
}

func (w *fakeWriter) Close() error {
	w.closed = true
	return nil
}

func TestPublisher_PublishFailure(t *testing.T) {
	w := &fakeWriter{}
	p := newPublisher(slog.New(slog.NewTextHandler(io.Discard, nil)), "payment-side-effects", w)
	failedAt := time.Date(2026, 5, 1, 10, 0, 0, 0, time.UTC)
	p.now = func() time.Time { return failedAt }

	err := p.PublishFailure(context.Background(), 42, entities.SideEffectStock, errors.New("db down"))
	require.NoError(t, err)
	require.Len(t, w.msgs, 1)

	msg := w.msgs[0]
	assert.Equal(t, "payment-side-effects", msg.Topic)
	assert.Equal(t, "42", string(msg.Key))

	got, err := Decode(msg.Value)
	require.NoError(t, err)
	assert.Equal(t, SideEffectFailure{
		OrderID:  42,
		Effect:   entities.SideEffectStock,
		Error:    "db down",
		FailedAt: failedAt,
	}, got)

	require.NoError(t, p.Close())
	assert.True(t, w.closed)
}

func TestPublisher_WriteError(t *testing.T) {
	writeErr := errors.New("broker down")
	p := newPublisher(slog.New(slog.NewTextHandler(io.Discard, nil)), "t", &fakeWriter{err: writeErr})

	err := p.PublishFailure(context.Background(), 1, entities.SideEffectCoupon, errors.New("x"))
	assert.ErrorIs(t, err, writeErr)
}

func TestDecode(t *testing.T) {
	testCases := []struct {
		name    string
		value   string
		wantErr bool
	}{
		{name: "valid", value: `{"order_id":1,"effect":"coupon","attempt":2}`},
		{name: "not json", value: `{`, wantErr: true},
		{name: "missing order", value: `{"effect":"stock"}`, wantErr: true},
		{name: "unknown effect", value: `{"order_id":1,"effect":"email"}`, wantErr: true},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := Decode([]byte(tc.value))
			if tc.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
