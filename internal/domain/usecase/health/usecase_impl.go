package health

import (
	"context"

	"sqs-bundle/internal/domain/gateway/db"
	"sqs-bundle/internal/domain/gateway/queue"
	"sqs-bundle/internal/domain/model"
	"sqs-bundle/pkg/redis"
)

type healthUseCase struct {
	dbGateway    db.HealthDBGateway
	queueGateway queue.HealthGateway
	redisClient  *redis.Client
}

func NewHealthUseCase(dbGateway db.HealthDBGateway, queueGateway queue.HealthGateway, redisClient *redis.Client) UseCase {
	return &healthUseCase{
		dbGateway:    dbGateway,
		queueGateway: queueGateway,
		redisClient:  redisClient,
	}
}

func (useCase *healthUseCase) CheckHealth() model.HealthResponse {
	dbHealth := useCase.dbGateway.Health()
	queueHealth := useCase.queueGateway.Health()
	redisHealth := useCase.checkRedis()

	overallStatus := model.StatusUp
	if dbHealth.Status != model.StatusUp || queueHealth.Status != model.StatusUp || redisHealth.Status != model.StatusUp {
		overallStatus = model.StatusDown
	}

	return model.HealthResponse{
		Status:   overallStatus,
		Database: dbHealth,
		Queue:    queueHealth,
		Redis:    redisHealth,
	}
}

func (useCase *healthUseCase) checkRedis() model.ComponentHealthStatus {
	check := useCase.redisClient.HealthCheck(context.Background())

	status := model.StatusUp
	if check.Status != redis.StatusUp {
		status = model.StatusDown
	}

	return model.ComponentHealthStatus{
		Status:  status,
		Details: check.Details,
	}
}
