package db

import "sqs-bundle/internal/domain/model"

type HealthDBGateway interface {
	Health() model.ComponentHealthStatus
}
