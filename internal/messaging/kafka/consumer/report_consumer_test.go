package consumer_test

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"go-payslip/internal/events"
	"go-payslip/internal/messaging/kafka/consumer"

	kafkago "github.com/segmentio/kafka-go"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

// fakeReader hands out queued messages, then blocks until the context ends.
type fakeReader struct {
	queue     []kafkago.Message
	committed []kafkago.Message
	cancel    context.CancelFunc
}

func (r *fakeReader) FetchMessage(ctx context.Context) (kafkago.Message, error) {
	if len(r.queue) == 0 {
		r.cancel()
		<-ctx.Done()
		return kafkago.Message{}, ctx.Err()
	}
	msg := r.queue[0]
	r.queue = r.queue[1:]
	return msg, nil
}

func (r *fakeReader) CommitMessages(_ context.Context, msgs ...kafkago.Message) error {
	r.committed = append(r.committed, msgs...)
	return nil
}

// fakeGenerator returns the queued errors for a report one call at a time.
type fakeGenerator struct {
	seen   []events.SemiAnnualReportRequestedEvent
	errs   map[string][]error
	onCall func()
}

func (g *fakeGenerator) Generate(_ context.Context, e events.SemiAnnualReportRequestedEvent) error {
	g.seen = append(g.seen, e)
	if g.onCall != nil {
		g.onCall()
	}
	queued := g.errs[e.ReportID]
	if len(queued) == 0 {
		return nil
	}
	g.errs[e.ReportID] = queued[1:]
	return queued[0]
}

func message(t *testing.T, offset int64, reportID string) kafkago.Message {
	value, err := json.Marshal(events.SemiAnnualReportRequestedEvent{
		ReportID:   reportID,
		OwnerID:    "owner-1",
		StartYear:  2025,
		StartMonth: 1,
		Count:      6,
	})
	assert.NoError(t, err)
	return kafkago.Message{Offset: offset, Value: value}
}

func committedOffsets(reader *fakeReader) []int64 {
	offsets := make([]int64, 0, len(reader.committed))
	for _, m := range reader.committed {
		offsets = append(offsets, m.Offset)
	}
	return offsets
}

func withoutBackoff(t *testing.T) {
	prev := consumer.RetryBackoff
	consumer.RetryBackoff = 0
	t.Cleanup(func() { consumer.RetryBackoff = prev })
}

func TestConsumeReportRequested(t *testing.T) {
	withoutBackoff(t)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	reader := &fakeReader{
		queue: []kafkago.Message{
			message(t, 1, "rep-1"),
			{Offset: 2, Value: []byte("not json")},
			message(t, 3, "rep-3"),
			message(t, 4, "rep-4"),
		},
		cancel: cancel,
	}
	generator := &fakeGenerator{errs: map[string][]error{
		"rep-3": {errors.New("db down"), errors.New("db down")},
	}}

	consumer.ConsumeReportRequested(ctx, reader, generator, zap.NewNop())

	ids := make([]string, 0, len(generator.seen))
	for _, e := range generator.seen {
		ids = append(ids, e.ReportID)
	}
	assert.Equal(t, []string{"rep-1", "rep-3", "rep-3", "rep-3", "rep-4"}, ids)
	assert.Equal(t, []int64{1, 2, 3, 4}, committedOffsets(reader))
}

func TestConsumeReportRequested_FailingReportBlocksLaterOffsets(t *testing.T) {
	withoutBackoff(t)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	reader := &fakeReader{
		queue: []kafkago.Message{
			message(t, 1, "rep-1"),
			message(t, 2, "rep-2"),
			message(t, 3, "rep-3"),
		},
		cancel: cancel,
	}
	down := errors.New("db down")
	generator := &fakeGenerator{errs: map[string][]error{
		"rep-2": {down, down, down, down, down, down},
	}}
	calls := 0
	generator.onCall = func() {
		calls++
		if calls == 4 {
			cancel()
		}
	}

	consumer.ConsumeReportRequested(ctx, reader, generator, zap.NewNop())

	assert.Equal(t, []int64{1}, committedOffsets(reader))
	for _, e := range generator.seen {
		assert.NotEqual(t, "rep-3", e.ReportID)
	}
}
