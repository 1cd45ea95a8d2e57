package queue

import (
	"sqs-bundle/internal/domain/model"
	"sqs-bundle/pkg/sqsbundle"
)

type HealthGateway interface {
	Health() model.ComponentHealthStatus
	RegisterCheck(name string, check sqsbundle.HealthCheck)
	UnregisterCheck(name string)
}
