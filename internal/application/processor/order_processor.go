package processor

import (
	"context"

	"sqs-bundle/internal/domain/model"
	"sqs-bundle/internal/domain/usecase/order"
	"sqs-bundle/pkg/log"
)

// OrderProcessor consumes order events from the orders queue.
type OrderProcessor struct {
	orderUseCase order.UseCase
}

func NewOrderProcessor(orderUseCase order.UseCase) *OrderProcessor {
	return &OrderProcessor{
		orderUseCase: orderUseCase,
	}
}

// Handle implements the sqsbundle.Handler interface.
func (p *OrderProcessor) Handle(ctx context.Context, event model.OrderEvent) error {
	log.Infof("Processing order event %s for order %s", event.EventID, event.OrderID)
	return p.orderUseCase.ProcessOrderEvent(ctx, event)
}
