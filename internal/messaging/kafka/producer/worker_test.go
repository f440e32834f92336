package producer_test

import (
	"context"
	"errors"
	"testing"

	"go-payslip/internal/messaging/kafka"
	kafkaMock "go-payslip/internal/messaging/kafka/mock"
	"go-payslip/internal/messaging/kafka/producer"

	kafkago "github.com/segmentio/kafka-go"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap"
)

type fakeWriter struct {
	written []kafkago.Message
	failFor map[string]error
}

func (w *fakeWriter) WriteMessages(_ context.Context, msgs ...kafkago.Message) error {
	for _, m := range msgs {
		if err, ok := w.failFor[string(m.Key)]; ok {
			return err
		}
		w.written = append(w.written, m)
	}
	return nil
}

func event(id, aggregateID string) kafka.OutboxEvent {
	return kafka.OutboxEvent{
		ID:            id,
		RequestID:     "REQ-" + id,
		AggregateType: "report",
		AggregateID:   aggregateID,
		EventType:     "semi_annual_report_requested",
		Topic:         "payslip.report.requested.v1",
		Payload:       []byte(`{}`),
		Status:        kafka.OutboxStatusPending,
	}
}

func header(m kafkago.Message, key string) string {
	for _, h := range m.Headers {
		if h.Key == key {
			return string(h.Value)
		}
	}
	return ""
}

func TestProcessPendingEvents(t *testing.T) {
	ctx := context.Background()

	t.Run("publishes and marks sent", func(t *testing.T) {
		repo := kafkaMock.NewMockOutboxRepository(gomock.NewController(t))
		writer := &fakeWriter{}

		repo.EXPECT().ListPending(ctx, producer.BatchSize).Return([]kafka.OutboxEvent{event("e1", "rep-1")}, nil)
		repo.EXPECT().MarkSent(ctx, "e1").Return(nil)

		sent, err := producer.ProcessPendingEvents(ctx, repo, writer, zap.NewNop())
		assert.NoError(t, err)
		assert.Equal(t, 1, sent)
		assert.Len(t, writer.written, 1)

		msg := writer.written[0]
		assert.Equal(t, "payslip.report.requested.v1", msg.Topic)
		assert.Equal(t, "rep-1", string(msg.Key))
		assert.Equal(t, "semi_annual_report_requested", header(msg, "event_type"))
		assert.Equal(t, "REQ-e1", header(msg, "request_id"))
	})

	t.Run("failed publish is marked for retry and batch continues", func(t *testing.T) {
		repo := kafkaMock.NewMockOutboxRepository(gomock.NewController(t))
		writer := &fakeWriter{failFor: map[string]error{"rep-1": errors.New("broker unreachable")}}

		repo.EXPECT().ListPending(ctx, producer.BatchSize).
			Return([]kafka.OutboxEvent{event("e1", "rep-1"), event("e2", "rep-2")}, nil)
		repo.EXPECT().MarkFailed(ctx, "e1", "broker unreachable").Return(nil)
		repo.EXPECT().MarkSent(ctx, "e2").Return(nil)

		sent, err := producer.ProcessPendingEvents(ctx, repo, writer, zap.NewNop())
		assert.NoError(t, err)
		assert.Equal(t, 1, sent)
	})

	t.Run("list failure", func(t *testing.T) {
		repo := kafkaMock.NewMockOutboxRepository(gomock.NewController(t))
		repo.EXPECT().ListPending(ctx, producer.BatchSize).Return(nil, errors.New("db down"))

		_, err := producer.ProcessPendingEvents(ctx, repo, &fakeWriter{}, zap.NewNop())
		assert.EqualError(t, err, "db down")
	})
}
