package order

import (
	"context"

	"sqs-bundle/internal/domain/entity"
	"sqs-bundle/internal/domain/model"
)

type UseCase interface {
	PlaceOrder(ctx context.Context, request model.PlaceOrderRequest) (*model.PlaceOrderResponse, error)
	ProcessOrderEvent(ctx context.Context, event model.OrderEvent) error
	GetOrder(ctx context.Context, orderID string) (*entity.Order, error)
}
