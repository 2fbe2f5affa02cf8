package gateway

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/Phuti24/Singleton-Payment-API/internal/pkg/constants"
	"github.com/Phuti24/Singleton-Payment-API/internal/pkg/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type published struct {
	topic   string
	message interface{}
}

type fakePublisher struct {
	messages []published
	err      error
}

func (f *fakePublisher) Publish(topic string, message interface{}) error {
	if f.err != nil {
		return f.err
	}
	f.messages = append(f.messages, published{topic: topic, message: message})
	return nil
}

func TestEventGW_PublishPaymentInitialized(t *testing.T) {
	pub := &fakePublisher{}
	gw := NewEventGW(pub)

	event := models.PaymentInitializedEvent{
		Reference:     "ref_abc123",
		Amount:        1050,
		Currency:      "ZAR",
		Status:        models.TransactionStatusPending,
		CustomerEmail: "a@b.com",
		OccurredAt:    time.Now(),
	}

	require.NoError(t, gw.PublishPaymentInitialized(context.Background(), event))
	require.Len(t, pub.messages, 1)
	assert.Equal(t, constants.TopicPaymentInitialized, pub.messages[0].topic)
	assert.Equal(t, event, pub.messages[0].message)
}

func TestEventGW_PublishPaymentVerified(t *testing.T) {
	pub := &fakePublisher{}
	gw := NewEventGW(pub)

	event := models.PaymentVerifiedEvent{Reference: "ref_abc123", Status: "success", RowsUpdated: 1}

	require.NoError(t, gw.PublishPaymentVerified(context.Background(), event))
	require.Len(t, pub.messages, 1)
	assert.Equal(t, constants.TopicPaymentVerified, pub.messages[0].topic)
	assert.Equal(t, event, pub.messages[0].message)
}

func TestEventGW_PublishError(t *testing.T) {
	gw := NewEventGW(&fakePublisher{err: errors.New("nsqd down")})

	err := gw.PublishPaymentVerified(context.Background(), models.PaymentVerifiedEvent{Reference: "ref"})

	assert.EqualError(t, err, "nsqd down")
}

func TestNoopEventGW(t *testing.T) {
	gw := NewNoopEventGW()

	assert.NoError(t, gw.PublishPaymentInitialized(context.Background(), models.PaymentInitializedEvent{}))
	assert.NoError(t, gw.PublishPaymentVerified(context.Background(), models.PaymentVerifiedEvent{}))
}
