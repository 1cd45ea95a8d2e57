package api

import (
	"context"
	"fmt"

	"sqs-bundle/internal/domain/entity"
	"sqs-bundle/pkg/http"
)

type fulfillmentGateway struct {
	client *http.Client
}

var _ FulfillmentGateway = (*fulfillmentGateway)(nil)

func NewFulfillmentGateway(client *http.Client) FulfillmentGateway {
	return &fulfillmentGateway{client: client}
}

func (gateway *fulfillmentGateway) NotifyOrderProcessed(ctx context.Context, order entity.Order) error {
	if err := gateway.client.PostJSON(ctx, "/notifications/orders", order, nil); err != nil {
		return fmt.Errorf("failed to notify fulfillment for order %s: %w", order.OrderID, err)
	}
	return nil
}
