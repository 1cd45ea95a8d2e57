package db

import (
	"errors"

	"sqs-bundle/internal/domain/entity"

	"gorm.io/gorm"
)

type GormOrderGateway struct {
	DB *gorm.DB
}

var _ OrderGateway = (*GormOrderGateway)(nil)

func NewGormOrderGateway(db *gorm.DB) *GormOrderGateway {
	return &GormOrderGateway{DB: db}
}

func (gateway *GormOrderGateway) Save(order entity.Order) (*entity.Order, error) {
	if err := gateway.DB.Create(&order).Error; err != nil {
		return nil, err
	}
	return &order, nil
}

func (gateway *GormOrderGateway) FindByOrderID(orderID string) (*entity.Order, error) {
	var order entity.Order
	err := gateway.DB.Where("order_id = ?", orderID).First(&order).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &order, nil
}
