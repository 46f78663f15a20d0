package kafka

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"

	"github.com/IBM/sarama"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/trace"

	"github.com/tair/storefront/pkg/logger"
)

// EventHandler handles one decoded order placed event
type EventHandler func(ctx context.Context, event OrderPlacedEvent) error

// Consumer wraps a Kafka consumer group
type Consumer struct {
	group         sarama.ConsumerGroup
	groupID       string
	topics        []string
	handlers      map[string]EventHandler
	handlersMutex sync.RWMutex
}

// NewConsumer creates a new Kafka consumer
func NewConsumer(brokers []string, groupID string, topics []string) (*Consumer, error) {
	config := sarama.NewConfig()
	config.Version = sarama.V2_6_0_0
	config.Consumer.Group.Rebalance.GroupStrategies = []sarama.BalanceStrategy{sarama.NewBalanceStrategyRoundRobin()}
	config.Consumer.Offsets.Initial = sarama.OffsetNewest
	config.Consumer.Return.Errors = true

	group, err := sarama.NewConsumerGroup(brokers, groupID, config)
	if err != nil {
		return nil, fmt.Errorf("failed to create Kafka consumer: %w", err)
	}

	logger.Logger.Info().
		Strs("brokers", brokers).
		Str("group_id", groupID).
		Strs("topics", topics).
		Msg("Kafka consumer initialized")

	c := newConsumer(groupID, topics)
	c.group = group
	return c, nil
}

func newConsumer(groupID string, topics []string) *Consumer {
	return &Consumer{
		groupID:  groupID,
		topics:   topics,
		handlers: make(map[string]EventHandler),
	}
}

// RegisterHandler registers an event handler for a specific event type
func (c *Consumer) RegisterHandler(eventType string, handler EventHandler) {
	c.handlersMutex.Lock()
	defer c.handlersMutex.Unlock()
	c.handlers[eventType] = handler
}

// Start consumes in the background until ctx is cancelled
func (c *Consumer) Start(ctx context.Context) {
	handler := &consumerGroupHandler{consumer: c}

	go func() {
		for ctx.Err() == nil {
			if err := c.group.Consume(ctx, c.topics, handler); err != nil {
				logger.Logger.Error().Err(err).Msg("Error from consumer")
			}
		}
		logger.Logger.Info().Msg("Consumer context cancelled, stopping")
	}()

	go func() {
		for err := range c.group.Errors() {
			logger.Logger.Error().Err(err).Msg("Consumer error")
		}
	}()

	logger.Logger.Info().
		Strs("topics", c.topics).
		Str("group_id", c.groupID).
		Msg("Kafka consumer started")
}

// Close closes the Kafka consumer
func (c *Consumer) Close() error {
	if c.group != nil {
		return c.group.Close()
	}
	return nil
}

// consumerGroupHandler implements sarama.ConsumerGroupHandler
type consumerGroupHandler struct {
	consumer *Consumer
}

func (h *consumerGroupHandler) Setup(sarama.ConsumerGroupSession) error   { return nil }
func (h *consumerGroupHandler) Cleanup(sarama.ConsumerGroupSession) error { return nil }

func (h *consumerGroupHandler) ConsumeClaim(session sarama.ConsumerGroupSession, claim sarama.ConsumerGroupClaim) error {
	for message := range claim.Messages() {
		h.consumer.handleMessage(session.Context(), message)
		session.MarkMessage(message, "")
	}
	return nil
}

// handleMessage decodes and dispatches one message. Failures are logged and
// the message is still marked; there is no dead-letter topic.
func (c *Consumer) handleMessage(ctx context.Context, message *sarama.ConsumerMessage) error {
	carrier := propagation.MapCarrier{}
	var eventType, eventID string
	for _, header := range message.Headers {
		switch key := string(header.Key); key {
		case "traceparent", "tracestate":
			carrier[key] = string(header.Value)
		case "event_type":
			eventType = string(header.Value)
		case "event_id":
			eventID = string(header.Value)
		}
	}
	ctx = otel.GetTextMapPropagator().Extract(ctx, carrier)

	tracer := otel.Tracer("kafka-consumer")
	ctx, span := tracer.Start(ctx, "kafka.consume.order_placed",
		trace.WithSpanKind(trace.SpanKindConsumer),
		trace.WithAttributes(
			attribute.String("messaging.system", "kafka"),
			attribute.String("messaging.source", message.Topic),
			attribute.Int("messaging.kafka.partition", int(message.Partition)),
			attribute.Int64("messaging.kafka.offset", message.Offset),
			attribute.String("event.type", eventType),
			attribute.String("event.id", eventID),
		),
	)
	defer span.End()

	fail := func(err error, msg string) error {
		span.RecordError(err)
		span.SetStatus(codes.Error, msg)
		logger.Error(ctx).Err(err).Str("event_type", eventType).Str("event_id", eventID).Msg(msg)
		return err
	}

	if eventType == "" {
		return fail(fmt.Errorf("message without event_type header"), "Malformed message")
	}

	c.handlersMutex.RLock()
	handler, exists := c.handlers[eventType]
	c.handlersMutex.RUnlock()
	if !exists {
		return fail(fmt.Errorf("no handler for %q", eventType), "No handler registered for event type")
	}

	var event OrderPlacedEvent
	if err := json.Unmarshal(message.Value, &event); err != nil {
		return fail(err, "Failed to unmarshal event")
	}
	span.SetAttributes(attribute.String("order.reference", event.Reference))

	if err := handler(ctx, event); err != nil {
		return fail(err, "Failed to handle event")
	}

	span.SetStatus(codes.Ok, "Event handled")
	logger.Info(ctx).
		Str("event_type", eventType).
		Str("event_id", event.EventID).
		Str("order_reference", event.Reference).
		Msg("Event handled")
	return nil
}
