package order

import (
	"context"
	"fmt"
	"time"

	"sqs-bundle/internal/domain/entity"
	"sqs-bundle/internal/domain/gateway/api"
	"sqs-bundle/internal/domain/gateway/db"
	"sqs-bundle/internal/domain/gateway/queue"
	"sqs-bundle/internal/domain/model"
	"sqs-bundle/pkg/log"
	"sqs-bundle/pkg/redis"

	"github.com/google/uuid"
)

type orderUseCase struct {
	sender       queue.Sender
	orderGateway db.OrderGateway
	fulfillment  api.FulfillmentGateway
	redisClient  *redis.Client
	dedupTTL     time.Duration
}

func NewOrderUseCase(sender queue.Sender, orderGateway db.OrderGateway, fulfillment api.FulfillmentGateway, redisClient *redis.Client, dedupTTL time.Duration) UseCase {
	return &orderUseCase{
		sender:       sender,
		orderGateway: orderGateway,
		fulfillment:  fulfillment,
		redisClient:  redisClient,
		dedupTTL:     dedupTTL,
	}
}

// PlaceOrder validates the intake request and enqueues an order event.
// Persistence happens on the receiving side.
func (useCase *orderUseCase) PlaceOrder(ctx context.Context, request model.PlaceOrderRequest) (*model.PlaceOrderResponse, error) {
	if useCase.sender == nil {
		return nil, fmt.Errorf("orders queue unavailable, order intake is disabled")
	}
	if request.CustomerID == "" {
		return nil, fmt.Errorf("customerId is required")
	}
	if request.Item == "" {
		return nil, fmt.Errorf("item is required")
	}
	if request.Quantity < 1 {
		return nil, fmt.Errorf("quantity must be at least 1")
	}

	event := model.OrderEvent{
		EventID:    uuid.New().String(),
		OrderID:    uuid.New().String(),
		CustomerID: request.CustomerID,
		Item:       request.Item,
		Quantity:   request.Quantity,
		Total:      request.Total,
		PlacedAt:   time.Now().UTC(),
	}

	if err := useCase.sender.Send(ctx, event); err != nil {
		return nil, fmt.Errorf("failed to enqueue order %s: %w", event.OrderID, err)
	}

	log.Infof("Order %s queued on %s", event.OrderID, useCase.sender.QueueName())

	return &model.PlaceOrderResponse{
		OrderID: event.OrderID,
		Status:  "QUEUED",
	}, nil
}

// ProcessOrderEvent handles one consumed order event: it deduplicates
// against redis (SQS is at-least-once), persists the order and notifies the
// fulfillment service. Any returned error is routed through the receiver's
// exception policy.
func (useCase *orderUseCase) ProcessOrderEvent(ctx context.Context, event model.OrderEvent) error {
	if event.EventID == "" {
		return fmt.Errorf("order event without eventId")
	}

	fresh, err := useCase.redisClient.SetNX(ctx, "order-event:"+event.EventID, 1, useCase.dedupTTL)
	if err != nil {
		return fmt.Errorf("failed to deduplicate order event %s: %w", event.EventID, err)
	}
	if !fresh {
		log.Infof("Order event %s already processed, skipping", event.EventID)
		return nil
	}

	order := entity.Order{
		OrderID:    event.OrderID,
		CustomerID: event.CustomerID,
		Item:       event.Item,
		Quantity:   event.Quantity,
		Total:      event.Total,
		PlacedAt:   event.PlacedAt,
	}

	saved, err := useCase.orderGateway.Save(order)
	if err != nil {
		return fmt.Errorf("failed to persist order %s: %w", event.OrderID, err)
	}

	if err := useCase.fulfillment.NotifyOrderProcessed(ctx, *saved); err != nil {
		return err
	}

	log.Infof("Order %s processed", event.OrderID)
	return nil
}

func (useCase *orderUseCase) GetOrder(ctx context.Context, orderID string) (*entity.Order, error) {
	return useCase.orderGateway.FindByOrderID(orderID)
}
