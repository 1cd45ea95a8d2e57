package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "sqs-bundle/configs"
	"sqs-bundle/internal/application/controller"
	"sqs-bundle/internal/application/middleware"
	"sqs-bundle/internal/application/processor"
	"sqs-bundle/internal/application/schedule"
	"sqs-bundle/internal/domain/gateway/api"
	"sqs-bundle/internal/domain/gateway/db"
	"sqs-bundle/internal/domain/gateway/queue"
	"sqs-bundle/internal/domain/model"
	"sqs-bundle/internal/domain/usecase/health"
	"sqs-bundle/internal/domain/usecase/order"
	"sqs-bundle/internal/infra/aws"
	gormdb "sqs-bundle/internal/infra/database/gorm"
	"sqs-bundle/internal/infra/lifecycle"
	"sqs-bundle/pkg/http"
	"sqs-bundle/pkg/log"
	"sqs-bundle/pkg/msg"
	"sqs-bundle/pkg/redis"
	"sqs-bundle/pkg/resource"
	"sqs-bundle/pkg/sqsbundle"

	"github.com/labstack/echo/v4"
)

func main() {
	log.Info(msg.GetMessage("app.start"))

	ctx := context.Background()

	// Init infra
	e := echo.New()
	e.HideBanner = true
	middleware.SetupRequestLogger(e)
	apiGroup := e.Group(resource.GetString("app.server.context-path"))

	sqsClient := aws.NewSqsClient()

	redisClient := redis.NewClient(redis.NewRedisConfig().
		WithHost(resource.GetString("app.redis.host")).
		WithPort(resource.GetInt("app.redis.port")).
		WithPassword(resource.GetString("app.redis.password")).
		WithDatabase(resource.GetInt("app.redis.database")))

	fulfillmentClient := http.NewHttpClient(resource.GetString("app.fulfillment.base-url"), http.ClientOptions{})

	// Init SQS bundle
	queueHealthGateway := queue.NewQueueHealthGateway()
	manager := lifecycle.NewManager(queueHealthGateway)
	bundle := sqsbundle.New(sqsClient, manager)

	// Init gateways
	orderGateway := db.NewGormOrderGateway(gormdb.Db)
	dbHealthGateway := db.NewGormHealthDBGateway(gormdb.Db)
	fulfillmentGateway := api.NewFulfillmentGateway(fulfillmentClient)

	// Resolution failures are warnings, not startup faults: the affected
	// sender or receiver is simply not created.
	ordersQueue := resource.GetString("app.cloud.sqs.orders-queue")
	var orderSenderGateway queue.Sender
	if orderSender, err := bundle.CreateSender(ctx, ordersQueue); err != nil {
		log.Warnf("Order intake will reject new orders: %v", err)
	} else {
		orderSenderGateway = orderSender
	}

	// Init UseCase
	orderUseCase := order.NewOrderUseCase(orderSenderGateway, orderGateway, fulfillmentGateway, redisClient,
		resource.GetDuration("app.redis.dedup-ttl"))
	healthUseCase := health.NewHealthUseCase(dbHealthGateway, queueHealthGateway, redisClient)

	// Init Controller
	healthController := controller.NewHealthController(apiGroup, healthUseCase)
	orderController := controller.NewOrderController(apiGroup, orderUseCase)

	// Init Routes
	healthController.InitHealthRoutes()
	orderController.InitOrderRoutes()

	// Register receivers
	policy := sqsbundle.RetryOnError
	if resource.GetBool("app.cloud.sqs.ack-on-error") {
		policy = sqsbundle.AcknowledgeAlways
	}

	sqsbundle.RegisterReceiver(ctx, bundle, ordersQueue, processor.NewOrderProcessor(orderUseCase),
		sqsbundle.WithMaxNumberOfMessages(resource.GetInt32("app.cloud.sqs.max-number-of-messages")),
		sqsbundle.WithWaitTimeSeconds(resource.GetInt32("app.cloud.sqs.wait-time-seconds")),
		sqsbundle.WithExceptionPolicy(policy),
	)

	digestQueue := resource.GetString("app.cloud.sqs.digest-queue")
	sqsbundle.RegisterReceiver(ctx, bundle, digestQueue,
		sqsbundle.HandlerFunc[model.DigestEvent](func(ctx context.Context, event model.DigestEvent) error {
			log.Infof("Digest %s generated at %s", event.RequestID, event.GeneratedAt)
			return nil
		}),
		sqsbundle.WithExceptionPolicy(policy),
	)

	// Init Schedule
	var digestScheduler *schedule.DigestScheduler
	digestSender, err := bundle.CreateSender(ctx, digestQueue)
	if err != nil {
		log.Warnf("Digest schedule disabled: %v", err)
	} else {
		digestScheduler = schedule.NewDigestScheduler(digestSender, resource.GetString("app.digest.cron"))
		digestScheduler.InitDigestScheduleTasks()
	}

	// Start managed units (bundle + receivers) before serving traffic
	if err := manager.StartAll(ctx); err != nil {
		log.Fatalf("Failed to start managed units: %v", err)
	}

	go func() {
		if err := e.Start(":" + resource.GetString("app.server.port")); err != nil {
			log.Infof("HTTP server stopped: %v", err)
		}
	}()
	log.Info(msg.GetMessage("app.started"))

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	log.Info(msg.GetMessage("app.stopping"))

	stopCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if digestScheduler != nil {
		digestScheduler.Stop()
	}
	manager.StopAll(stopCtx)

	if err := e.Shutdown(stopCtx); err != nil {
		log.Errorf("HTTP server shutdown failed: %v", err)
	}
	if err := redisClient.Close(); err != nil {
		log.Errorf("Redis client close failed: %v", err)
	}

	log.Info(msg.GetMessage("app.stopped"))
}
