package main

import (
	"context"
	"log"
	"os"

	"github.com/aws/aws-lambda-go/events"
	"github.com/aws/aws-lambda-go/lambda"
	"go.uber.org/zap"

	"github.com/serverless-shop/order-pipeline/internal/aws"
	"github.com/serverless-shop/order-pipeline/internal/config"
	"github.com/serverless-shop/order-pipeline/internal/email"
	"github.com/serverless-shop/order-pipeline/internal/metrics"
	"github.com/serverless-shop/order-pipeline/internal/orders"
	"github.com/serverless-shop/order-pipeline/internal/processor"
)

func main() {
	logger, err := zap.NewProduction()
	if err != nil {
		log.Fatalf("failed to init logger: %v", err)
	}
	defer logger.Sync()

	cfg, err := config.Load()
	if err != nil {
		logger.Fatal("failed to load configuration", zap.Error(err))
	}

	clients, err := aws.NewAWSClients(context.Background())
	if err != nil {
		logger.Fatal("failed to init aws clients", zap.Error(err))
	}

	store := orders.NewStore(clients.DynamoDB, cfg.OrdersTable, cfg.DependencyTimeout)
	notifier := email.NewNotifier(clients.SES, cfg.SenderEmail, cfg.DependencyTimeout)
	proc := processor.New(store, notifier, logger)
	recorder := metrics.NewRecorder(clients.CloudWatch, cfg.MetricsNamespace)

	handler := func(ctx context.Context, ev events.SQSEvent) (processor.BatchResult, error) {
		logger.Info("received sqs batch", zap.Int("records", len(ev.Records)))
		res := proc.Handle(ctx, ev)
		if err := recorder.RecordBatch(ctx, res.TotalProcessed, res.TotalFailed); err != nil {
			logger.Warn("failed to publish batch metrics", zap.Error(err))
		}
		return res, nil
	}

	// RUN_LOCAL=true simulates a single SQS event for development.
	if cfg.RunLocal {
		body := os.Getenv("LOCAL_SQS_BODY")
		if body == "" {
			body = `{"orderId":"local-order-1","customerName":"Local Test","customerEmail":"local@example.com","items":[{"productId":"p1","quantity":1,"price":9.99}],"shippingAddress":{"street":"1 St","city":"C","postalCode":"00000","country":"US"},"status":"PENDING"}`
		}
		ev := events.SQSEvent{
			Records: []events.SQSMessage{{Body: body}},
		}
		res, _ := handler(context.Background(), ev)
		logger.Info("local run complete",
			zap.Int("processed", res.TotalProcessed),
			zap.Int("failed", res.TotalFailed))
		return
	}

	lambda.Start(handler)
}
