package health

import "sqs-bundle/internal/domain/model"

type UseCase interface {
	CheckHealth() model.HealthResponse
}
