package api

import (
	"context"

	"sqs-bundle/internal/domain/entity"
)

// FulfillmentGateway notifies the downstream fulfillment service about a
// processed order.
type FulfillmentGateway interface {
	NotifyOrderProcessed(ctx context.Context, order entity.Order) error
}
