package events

import (
	"context"
	"errors"

	"github.com/google/uuid"
	kafkago "github.com/segmentio/kafka-go"
	"go.uber.org/zap"

	"github.com/Beausejour-Hotels/service-reservation/internal/domain"
	"github.com/Beausejour-Hotels/service-reservation/internal/kafka"
)

// StatusApplier applies front-desk facts to reservations; satisfied by the
// reservation service.
type StatusApplier interface {
	ApplyCheckIn(ctx context.Context, reservationID uuid.UUID) error
	ApplyCheckOut(ctx context.Context, reservationID uuid.UUID) error
}

// FrontDeskConsumer listens to front-desk events and drives the matching
// reservation lifecycle transitions: a recorded check-in confirms the
// reservation, a recorded check-out completes it.
type FrontDeskConsumer struct {
	consumer *kafka.Consumer
	applier  StatusApplier
	logger   *zap.Logger
}

// NewFrontDeskConsumer creates a new FrontDeskConsumer.
func NewFrontDeskConsumer(brokers []string, groupID string, applier StatusApplier, logger *zap.Logger) *FrontDeskConsumer {
	consumer := kafka.NewConsumer(brokers, groupID, TopicFrontDeskEvents, logger)
	return &FrontDeskConsumer{
		consumer: consumer,
		applier:  applier,
		logger:   logger,
	}
}

// Start begins consuming front-desk events. This blocks until the context is
// cancelled.
func (c *FrontDeskConsumer) Start(ctx context.Context) error {
	return c.consumer.Consume(ctx, c.handleMessage)
}

// Close closes the underlying Kafka consumer.
func (c *FrontDeskConsumer) Close() error {
	return c.consumer.Close()
}

func (c *FrontDeskConsumer) handleMessage(ctx context.Context, msg kafkago.Message) error {
	cloudEvent, err := kafka.ParseCloudEvent(msg.Value)
	if err != nil {
		c.logger.Error("failed to parse cloud event from front-desk topic",
			zap.Error(err),
			zap.String("raw", string(msg.Value)),
		)
		return nil // Don't retry malformed messages
	}

	switch cloudEvent.Type {
	case FrontDeskCheckInRecorded:
		return c.handleCheckIn(ctx, cloudEvent)
	case FrontDeskCheckOutRecorded:
		return c.handleCheckOut(ctx, cloudEvent)
	default:
		c.logger.Debug("ignoring unhandled front-desk event type",
			zap.String("type", cloudEvent.Type),
		)
		return nil
	}
}

func (c *FrontDeskConsumer) handleCheckIn(ctx context.Context, cloudEvent kafka.CloudEvent) error {
	var evt CheckInRecordedEvent
	if err := cloudEvent.ParseData(&evt); err != nil {
		c.logger.Error("failed to parse CheckInRecordedEvent data", zap.Error(err))
		return nil
	}

	if err := c.applier.ApplyCheckIn(ctx, evt.ReservationID); err != nil {
		// A stale or duplicated front-desk event is not worth redelivering.
		if isTerminalApplyError(err) {
			c.logger.Warn("dropping check-in event",
				zap.String("reservation_id", evt.ReservationID.String()),
				zap.Error(err),
			)
			return nil
		}
		return err
	}

	c.logger.Info("reservation confirmed after front-desk check-in",
		zap.String("reservation_id", evt.ReservationID.String()),
	)
	return nil
}

func (c *FrontDeskConsumer) handleCheckOut(ctx context.Context, cloudEvent kafka.CloudEvent) error {
	var evt CheckOutRecordedEvent
	if err := cloudEvent.ParseData(&evt); err != nil {
		c.logger.Error("failed to parse CheckOutRecordedEvent data", zap.Error(err))
		return nil
	}

	if err := c.applier.ApplyCheckOut(ctx, evt.ReservationID); err != nil {
		if isTerminalApplyError(err) {
			c.logger.Warn("dropping check-out event",
				zap.String("reservation_id", evt.ReservationID.String()),
				zap.Error(err),
			)
			return nil
		}
		return err
	}

	c.logger.Info("reservation completed after front-desk check-out",
		zap.String("reservation_id", evt.ReservationID.String()),
	)
	return nil
}

// isTerminalApplyError reports whether retrying the event could never
// succeed: the reservation is gone or its lifecycle rejects the move.
func isTerminalApplyError(err error) bool {
	var notFound *domain.NotFoundError
	var transition *domain.InvalidTransitionError
	return errors.As(err, &notFound) || errors.As(err, &transition)
}
