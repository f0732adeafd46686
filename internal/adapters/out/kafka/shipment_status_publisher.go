// Package kafka publishes cargo integration events to Kafka topics.
package kafka

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"time"

	"cargo/internal/core/ports"

	"github.com/segmentio/kafka-go"
)

var (
	_ ports.EventPublisher = (*ShipmentStatusPublisher)(nil)

	ErrBrokerIsRequired = errors.New("kafka broker address is required")
	ErrTopicIsRequired  = errors.New("kafka topic is required")
)

// messageWriter is the part of *kafka.Writer the publisher uses.
type messageWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

// ShipmentStatusChangedMessage is the JSON value written to the topic.
type ShipmentStatusChangedMessage struct {
	EventType    string    `json:"event_type"`
	ShipmentID   string    `json:"shipment_id"`
	ShipmentName string    `json:"shipment_name"`
	Status       string    `json:"status"`
	ParcelStatus string    `json:"parcel_status"`
	ParcelIDs    []string  `json:"parcel_ids"`
	OccurredAt   time.Time `json:"occurred_at"`
}

const shipmentStatusChangedEvent = "shipment.status_changed"

// ShipmentStatusPublisher writes ShipmentStatusChanged events keyed by
// shipment ID, so every change of one shipment lands on one partition.
type ShipmentStatusPublisher struct {
	writer messageWriter
	logger *slog.Logger
}

func NewShipmentStatusPublisher(broker, topic string, logger *slog.Logger) (*ShipmentStatusPublisher, error) {
	if broker == "" {
		return nil, ErrBrokerIsRequired
	}
	if topic == "" {
		return nil, ErrTopicIsRequired
	}

	writer := &kafka.Writer{
		Addr:                   kafka.TCP(broker),
		Topic:                  topic,
		Balancer:               &kafka.Hash{},
		RequiredAcks:           kafka.RequireOne,
		AllowAutoTopicCreation: true,
	}
	return NewShipmentStatusPublisherWithWriter(writer, logger), nil
}

func NewShipmentStatusPublisherWithWriter(writer messageWriter, logger *slog.Logger) *ShipmentStatusPublisher {
	return &ShipmentStatusPublisher{
		writer: writer,
		logger: logger.With("component", "shipment_status_publisher"),
	}
}

func (p *ShipmentStatusPublisher) PublishShipmentStatusChanged(
	ctx context.Context,
	event ports.ShipmentStatusChanged,
) error {
	parcelIDs := make([]string, len(event.ParcelIDs))
	for i, id := range event.ParcelIDs {
		parcelIDs[i] = id.String()
	}

	value, err := json.Marshal(ShipmentStatusChangedMessage{
		EventType:    shipmentStatusChangedEvent,
		ShipmentID:   event.ShipmentID.String(),
		ShipmentName: event.ShipmentName,
		Status:       event.Status,
		ParcelStatus: event.ParcelStatus,
		ParcelIDs:    parcelIDs,
		OccurredAt:   event.OccurredAt.UTC(),
	})
	if err != nil {
		return err
	}

	msg := kafka.Message{
		Key:   []byte(event.ShipmentID.String()),
		Value: value,
		Headers: []kafka.Header{
			{Key: "event_type", Value: []byte(shipmentStatusChangedEvent)},
		},
	}
	if err = p.writer.WriteMessages(ctx, msg); err != nil {
		return err
	}

	p.logger.DebugContext(ctx, "Event published",
		"event", shipmentStatusChangedEvent,
		"shipment_id", event.ShipmentID.String(),
		"status", event.Status,
	)
	return nil
}

func (p *ShipmentStatusPublisher) Close() error {
	return p.writer.Close()
}
