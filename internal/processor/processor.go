package processor

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/aws/aws-lambda-go/events"
	"go.uber.org/zap"

	"github.com/serverless-shop/order-pipeline/internal/orders"
)

// UnknownOrderID attributes a failure when the record body yields no order id.
const UnknownOrderID = "unknown"

// StoragePort upserts the full order, keyed by orderId.
type StoragePort interface {
	Put(ctx context.Context, o orders.Order) error
}

// NotifierPort delivers the order confirmation to the customer.
type NotifierPort interface {
	Notify(ctx context.Context, o orders.Order) error
}

// BatchResult reports per-record outcomes for one delivered batch. The counts
// always equal the lengths of the respective lists.
type BatchResult struct {
	ProcessedOrders []string `json:"processedOrders"`
	FailedOrders    []string `json:"failedOrders"`
	TotalProcessed  int      `json:"totalProcessed"`
	TotalFailed     int      `json:"totalFailed"`
}

// Processor consumes enqueued orders: it computes the derived fields, marks
// the order PROCESSED, persists it and sends the confirmation. Batches may be
// handled concurrently by independent workers; records within one batch are
// processed sequentially.
type Processor struct {
	store    StoragePort
	notifier NotifierPort
	log      *zap.Logger

	nowFunc func() time.Time
}

func New(store StoragePort, notifier NotifierPort, log *zap.Logger) *Processor {
	return &Processor{
		store:    store,
		notifier: notifier,
		log:      log,
		nowFunc:  time.Now,
	}
}

// Handle processes each record of a delivered SQS batch. A failing record is
// attributed in FailedOrders and never aborts its siblings; partial success
// is expected and reported back for the caller's redelivery decision.
func (p *Processor) Handle(ctx context.Context, ev events.SQSEvent) BatchResult {
	res := BatchResult{
		ProcessedOrders: []string{},
		FailedOrders:    []string{},
	}

	for _, rec := range ev.Records {
		orderID, err := p.processRecord(ctx, rec)
		if err != nil {
			p.log.Error("order processing failed",
				zap.String("order_id", orderID),
				zap.Error(err))
			res.FailedOrders = append(res.FailedOrders, orderID)
			continue
		}
		p.log.Info("order processed", zap.String("order_id", orderID))
		res.ProcessedOrders = append(res.ProcessedOrders, orderID)
	}

	res.TotalProcessed = len(res.ProcessedOrders)
	res.TotalFailed = len(res.FailedOrders)
	return res
}

// processRecord is the per-record isolation boundary: the returned order id
// attributes the outcome even when the error happened before a full parse.
func (p *Processor) processRecord(ctx context.Context, rec events.SQSMessage) (string, error) {
	orderID := peekOrderID(rec.Body)

	var o orders.Order
	if err := json.Unmarshal([]byte(rec.Body), &o); err != nil {
		return orderID, fmt.Errorf("parse record body: %w", err)
	}
	if o.OrderID != "" {
		orderID = o.OrderID
	}

	o.Status = orders.StatusProcessed
	o.ProcessedAt = p.nowFunc().UTC().Format(time.RFC3339)
	o.TotalAmount = orders.Total(o.Items)

	if err := p.store.Put(ctx, o); err != nil {
		return orderID, fmt.Errorf("persist order: %w", err)
	}

	// The order is committed as PROCESSED at this point. A notification
	// failure still fails the record so the miss is visible to the caller;
	// redelivery rewrites the identical end state.
	if err := p.notifier.Notify(ctx, o); err != nil {
		return orderID, fmt.Errorf("send confirmation: %w", err)
	}

	return orderID, nil
}

// peekOrderID extracts the order id from the raw body before the full parse,
// so a failure can be attributed even when the body is otherwise unusable.
func peekOrderID(body string) string {
	var probe struct {
		OrderID string `json:"orderId"`
	}
	if err := json.Unmarshal([]byte(body), &probe); err == nil && probe.OrderID != "" {
		return probe.OrderID
	}
	return UnknownOrderID
}
