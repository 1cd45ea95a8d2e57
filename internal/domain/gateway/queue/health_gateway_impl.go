package queue

import (
	"context"
	"strconv"
	"sync"
	"time"

	"sqs-bundle/internal/domain/model"
	"sqs-bundle/pkg/sqsbundle"
)

// QueueHealthGateway aggregates the health checks the SQS bundle registers
// (the backend reachability check plus one check per receiver) into one
// component status.
type QueueHealthGateway struct {
	checks map[string]sqsbundle.HealthCheck
	mutex  sync.RWMutex
}

var _ HealthGateway = (*QueueHealthGateway)(nil)

func NewQueueHealthGateway() *QueueHealthGateway {
	return &QueueHealthGateway{
		checks: make(map[string]sqsbundle.HealthCheck),
	}
}

func (gateway *QueueHealthGateway) RegisterCheck(name string, check sqsbundle.HealthCheck) {
	gateway.mutex.Lock()
	defer gateway.mutex.Unlock()
	gateway.checks[name] = check
}

func (gateway *QueueHealthGateway) UnregisterCheck(name string) {
	gateway.mutex.Lock()
	defer gateway.mutex.Unlock()
	delete(gateway.checks, name)
}

func (gateway *QueueHealthGateway) Health() model.ComponentHealthStatus {
	gateway.mutex.RLock()
	defer gateway.mutex.RUnlock()

	if len(gateway.checks) == 0 {
		return model.ComponentHealthStatus{
			Status: model.StatusUnknown,
			Details: map[string]string{
				"message":      "No checks registered",
				"checks_count": "0",
			},
		}
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	overallStatus := model.StatusUp
	details := make(map[string]string)
	checksUp := 0
	checksDown := 0

	for name, check := range gateway.checks {
		if err := check(ctx); err != nil {
			checksDown++
			overallStatus = model.StatusDown
			details[name+"_status"] = "DOWN"
			details[name+"_error"] = err.Error()
		} else {
			checksUp++
			details[name+"_status"] = "UP"
		}
	}

	details["checks_total"] = strconv.Itoa(len(gateway.checks))
	details["checks_up"] = strconv.Itoa(checksUp)
	details["checks_down"] = strconv.Itoa(checksDown)

	return model.ComponentHealthStatus{
		Status:  overallStatus,
		Details: details,
	}
}
