package orders

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	dyn "github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/aws/smithy-go"

	"github.com/serverless-shop/order-pipeline/internal/aws"
)

// Store persists orders in DynamoDB. Put is an unconditional upsert keyed by
// orderId: a redelivered order overwrites the previous item with the same end
// state, which keeps processing idempotent under at-least-once delivery.
type Store struct {
	client    aws.DynamoDBAPI
	tableName string
	timeout   time.Duration
}

// NewStore creates a Store bound to a table. Every call is bounded by timeout.
func NewStore(client aws.DynamoDBAPI, tableName string, timeout time.Duration) *Store {
	return &Store{
		client:    client,
		tableName: tableName,
		timeout:   timeout,
	}
}

// Put upserts the full order item. Last write wins, no prior-state check.
func (s *Store) Put(ctx context.Context, o Order) error {
	item, err := attributevalue.MarshalMap(o)
	if err != nil {
		return fmt.Errorf("marshal order: %w", err)
	}

	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	_, err = s.client.PutItem(ctx, &dyn.PutItemInput{
		TableName: &s.tableName,
		Item:      item,
	})
	if err != nil {
		return s.dependencyError(err)
	}
	return nil
}

// Get fetches an order by orderId. Returns (nil, nil) if not found.
func (s *Store) Get(ctx context.Context, orderID string) (*Order, error) {
	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	out, err := s.client.GetItem(ctx, &dyn.GetItemInput{
		TableName: &s.tableName,
		Key: map[string]types.AttributeValue{
			"orderId": &types.AttributeValueMemberS{Value: orderID},
		},
	})
	if err != nil {
		return nil, s.dependencyError(err)
	}
	if len(out.Item) == 0 {
		return nil, nil
	}

	var o Order
	if err := attributevalue.UnmarshalMap(out.Item, &o); err != nil {
		return nil, fmt.Errorf("unmarshal order: %w", err)
	}
	return &o, nil
}

func (s *Store) dependencyError(err error) error {
	var apiErr smithy.APIError
	if errors.As(err, &apiErr) {
		return &DependencyError{Dependency: "dynamodb", Err: fmt.Errorf("%s: %w", apiErr.ErrorCode(), err)}
	}
	return &DependencyError{Dependency: "dynamodb", Err: err}
}
