package intake

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/serverless-shop/order-pipeline/internal/orders"
	"github.com/serverless-shop/order-pipeline/internal/validation"
)

// QueuePort hands an accepted order to the message queue and waits for the
// acknowledged delivery id. Delivery downstream is at-least-once.
type QueuePort interface {
	Enqueue(ctx context.Context, o orders.Order) (deliveryID string, err error)
}

// Service accepts raw order submissions: it parses and validates the payload,
// assigns identity and the PENDING status, and enqueues the order for
// asynchronous processing. Safe for concurrent use; all state is external.
type Service struct {
	queue QueuePort
	log   *zap.Logger

	nowFunc func() time.Time
	newID   func() string
}

func NewService(queue QueuePort, log *zap.Logger) *Service {
	return &Service{
		queue:   queue,
		log:     log,
		nowFunc: time.Now,
		newID:   uuid.NewString,
	}
}

// Submit runs the full intake path for one submission and returns the
// assigned order id. Failures are typed: orders.ErrMalformedInput for an
// unparseable body, *orders.ValidationError for a rule failure and
// *orders.DependencyError when the queue is unavailable. Validation is total
// before any side effect; exactly one enqueue happens per accepted
// submission and none on any failure path.
func (s *Service) Submit(ctx context.Context, body []byte) (string, error) {
	var payload map[string]any
	if err := json.Unmarshal(body, &payload); err != nil {
		return "", fmt.Errorf("%w: %v", orders.ErrMalformedInput, err)
	}

	if res := validation.ValidateOrder(payload); !res.Valid {
		return "", &orders.ValidationError{Message: res.Message}
	}

	// The payload passed validation, so the typed decode cannot fail on the
	// fields validation covers; anything unknown is dropped here.
	var o orders.Order
	if err := json.Unmarshal(body, &o); err != nil {
		return "", fmt.Errorf("%w: %v", orders.ErrMalformedInput, err)
	}

	o.OrderID = s.newID()
	o.Timestamp = s.nowFunc().UTC().Format(time.RFC3339)
	o.Status = orders.StatusPending

	deliveryID, err := s.queue.Enqueue(ctx, o)
	if err != nil {
		return "", err
	}

	s.log.Info("order accepted",
		zap.String("order_id", o.OrderID),
		zap.String("delivery_id", deliveryID))
	return o.OrderID, nil
}
