package kafka

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/IBM/sarama"
	"github.com/IBM/sarama/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tair/storefront/pkg/money"
)

func sampleEvent() OrderPlacedEvent {
	return OrderPlacedEvent{
		OrderID:     12,
		Reference:   "7f0c2d1e-0000-4000-8000-000000000001",
		UserID:      3,
		TotalAmount: money.MustParse("49.98"),
		Items: []OrderPlacedItem{
			{ProductID: 4, Quantity: 2, Price: money.MustParse("24.99")},
		},
	}
}

func TestPublishOrderPlaced(t *testing.T) {
	producer := mocks.NewSyncProducer(t, nil)
	producer.ExpectSendMessageWithCheckerFunctionAndSucceed(func(val []byte) error {
		var event OrderPlacedEvent
		if err := json.Unmarshal(val, &event); err != nil {
			return err
		}
		if event.EventType != EventTypeOrderPlaced || event.EventID == "" {
			return errors.New("event metadata not set")
		}
		if !event.TotalAmount.Equal(money.MustParse("49.98")) {
			return errors.New("total amount mangled")
		}
		return nil
	})

	p := NewPublisherWithProducer(producer)
	require.NoError(t, p.PublishOrderPlaced(context.Background(), sampleEvent()))
	require.NoError(t, p.Close())
}

func TestPublishOrderPlacedFailure(t *testing.T) {
	producer := mocks.NewSyncProducer(t, nil)
	producer.ExpectSendMessageAndFail(sarama.ErrOutOfBrokers)

	p := NewPublisherWithProducer(producer)
	err := p.PublishOrderPlaced(context.Background(), sampleEvent())
	assert.ErrorIs(t, err, sarama.ErrOutOfBrokers)
	require.NoError(t, p.Close())
}

func message(t *testing.T, eventType string, event OrderPlacedEvent) *sarama.ConsumerMessage {
	t.Helper()
	body, err := json.Marshal(event)
	require.NoError(t, err)

	msg := &sarama.ConsumerMessage{Topic: TopicOrderPlaced, Value: body}
	if eventType != "" {
		msg.Headers = append(msg.Headers, &sarama.RecordHeader{Key: []byte("event_type"), Value: []byte(eventType)})
	}
	return msg
}

func TestHandleMessageDispatches(t *testing.T) {
	c := newConsumer("group", []string{TopicOrderPlaced})

	var got OrderPlacedEvent
	c.RegisterHandler(EventTypeOrderPlaced, func(ctx context.Context, event OrderPlacedEvent) error {
		got = event
		return nil
	})

	require.NoError(t, c.handleMessage(context.Background(), message(t, EventTypeOrderPlaced, sampleEvent())))
	assert.Equal(t, uint(12), got.OrderID)
	require.Len(t, got.Items, 1)
	assert.Equal(t, 2, got.Items[0].Quantity)
}

func TestHandleMessageRejects(t *testing.T) {
	c := newConsumer("group", []string{TopicOrderPlaced})
	c.RegisterHandler(EventTypeOrderPlaced, func(ctx context.Context, event OrderPlacedEvent) error {
		return errors.New("boom")
	})

	assert.Error(t, c.handleMessage(context.Background(), message(t, "", sampleEvent())))
	assert.Error(t, c.handleMessage(context.Background(), message(t, "order.cancelled", sampleEvent())))
	assert.ErrorContains(t, c.handleMessage(context.Background(), message(t, EventTypeOrderPlaced, sampleEvent())), "boom")

	bad := &sarama.ConsumerMessage{
		Value:   []byte("{"),
		Headers: []*sarama.RecordHeader{{Key: []byte("event_type"), Value: []byte(EventTypeOrderPlaced)}},
	}
	assert.Error(t, c.handleMessage(context.Background(), bad))
}
