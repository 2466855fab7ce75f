package main

import (
	"context"
	"log"
	"net/http"

	"github.com/aws/aws-lambda-go/events"
	"github.com/aws/aws-lambda-go/lambda"
	ginadapter "github.com/awslabs/aws-lambda-go-api-proxy/gin"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/serverless-shop/order-pipeline/internal/aws"
	"github.com/serverless-shop/order-pipeline/internal/config"
	"github.com/serverless-shop/order-pipeline/internal/handlers"
	"github.com/serverless-shop/order-pipeline/internal/intake"
	"github.com/serverless-shop/order-pipeline/internal/orders"
	"github.com/serverless-shop/order-pipeline/internal/queue"
)

func setupRouter(cfg handlers.HandlerConfig) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())

	// health
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	handlers.RegisterOrdersRoutes(r, cfg)

	return r
}

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
	if cfg.QueueURL == "" {
		logger.Fatal("ORDERS_QUEUE_URL must be set for the api")
	}

	clients, err := aws.NewAWSClients(context.Background())
	if err != nil {
		logger.Fatal("failed to init aws clients", zap.Error(err))
	}

	publisher := queue.NewPublisher(clients.SQS, cfg.QueueURL, cfg.DependencyTimeout)
	store := orders.NewStore(clients.DynamoDB, cfg.OrdersTable, cfg.DependencyTimeout)

	r := setupRouter(handlers.HandlerConfig{
		Intake: intake.NewService(publisher, logger),
		Orders: store,
		Logger: logger,
	})

	// RUN_LOCAL=true runs a plain HTTP server for development.
	if cfg.RunLocal {
		logger.Info("running local server", zap.String("addr", cfg.HTTPAddr))
		if err := r.Run(cfg.HTTPAddr); err != nil {
			logger.Fatal("failed to run local server", zap.Error(err))
		}
		return
	}

	// lambda adapter
	adapter := ginadapter.New(r)

	lambda.Start(func(ctx context.Context, req events.APIGatewayProxyRequest) (interface{}, error) {
		return adapter.ProxyWithContext(ctx, req)
	})
}
