package db

import (
	"sqs-bundle/internal/domain/entity"
)

type OrderGateway interface {
	Save(order entity.Order) (*entity.Order, error)
	FindByOrderID(orderID string) (*entity.Order, error)
}
