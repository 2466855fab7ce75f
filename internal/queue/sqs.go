package queue

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	sdkaws "github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/sqs"
	sqstypes "github.com/aws/aws-sdk-go-v2/service/sqs/types"

	"github.com/serverless-shop/order-pipeline/internal/aws"
	"github.com/serverless-shop/order-pipeline/internal/orders"
)

// Publisher sends accepted orders to an SQS queue. It implements the intake
// QueuePort: the order is serialized as the message body and the order id is
// attached as a message attribute for consumer-side attribution.
type Publisher struct {
	sqs      aws.SQSAPI
	queueURL string
	timeout  time.Duration
}

// NewPublisher returns a Publisher bound to a queue URL. Every send is
// bounded by timeout; a deadline counts as a dependency failure.
func NewPublisher(sqsClient aws.SQSAPI, queueURL string, timeout time.Duration) *Publisher {
	return &Publisher{
		sqs:      sqsClient,
		queueURL: queueURL,
		timeout:  timeout,
	}
}

// Enqueue publishes the order and returns the queue's delivery id.
func (p *Publisher) Enqueue(ctx context.Context, o orders.Order) (string, error) {
	body, err := json.Marshal(o)
	if err != nil {
		return "", fmt.Errorf("marshal order: %w", err)
	}

	ctx, cancel := context.WithTimeout(ctx, p.timeout)
	defer cancel()

	out, err := p.sqs.SendMessage(ctx, &sqs.SendMessageInput{
		QueueUrl:    &p.queueURL,
		MessageBody: sdkaws.String(string(body)),
		MessageAttributes: map[string]sqstypes.MessageAttributeValue{
			"OrderId": {
				DataType:    sdkaws.String("String"),
				StringValue: &o.OrderID,
			},
		},
	})
	if err != nil {
		return "", &orders.DependencyError{Dependency: "sqs", Err: err}
	}
	return sdkaws.ToString(out.MessageId), nil
}
