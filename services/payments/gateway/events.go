package gateway

import (
	"context"

	"github.com/Phuti24/Singleton-Payment-API/internal/pkg/constants"
	"github.com/Phuti24/Singleton-Payment-API/internal/pkg/models"
	"github.com/Phuti24/Singleton-Payment-API/services/payments"
)

// Publisher is the subset of the NSQ producer the event gateway needs
type Publisher interface {
	Publish(topic string, message interface{}) error
}

// eventGW publishes payment lifecycle events to NSQ
type eventGW struct {
	publisher Publisher
}

// NewEventGW creates an event gateway on top of an NSQ publisher
func NewEventGW(publisher Publisher) payments.EventGW {
	return &eventGW{publisher: publisher}
}

// PublishPaymentInitialized publishes to payment.initialized
func (g *eventGW) PublishPaymentInitialized(ctx context.Context, event models.PaymentInitializedEvent) error {
	return g.publisher.Publish(constants.TopicPaymentInitialized, event)
}

// PublishPaymentVerified publishes to payment.verified
func (g *eventGW) PublishPaymentVerified(ctx context.Context, event models.PaymentVerifiedEvent) error {
	return g.publisher.Publish(constants.TopicPaymentVerified, event)
}

// noopEventGW is used when no NSQ address is configured
type noopEventGW struct{}

// NewNoopEventGW returns an event gateway that drops every event
func NewNoopEventGW() payments.EventGW {
	return noopEventGW{}
}

func (noopEventGW) PublishPaymentInitialized(context.Context, models.PaymentInitializedEvent) error {
	return nil
}

func (noopEventGW) PublishPaymentVerified(context.Context, models.PaymentVerifiedEvent) error {
	return nil
}
