package lifecycle

import (
	"context"

	"sqs-bundle/internal/domain/gateway/queue"
	"sqs-bundle/pkg/log"
	"sqs-bundle/pkg/sqsbundle"
)

// Manager is the application's implementation of the supervisor capability
// the SQS bundle expects: it collects managed units during wiring, starts
// them before the HTTP server accepts traffic and stops them in reverse
// order on shutdown. Health checks are routed to the queue health gateway
// so they surface on the /health endpoint.
type Manager struct {
	managed       []sqsbundle.Managed
	healthGateway queue.HealthGateway
	started       int
}

var _ sqsbundle.Lifecycle = (*Manager)(nil)

func NewManager(healthGateway queue.HealthGateway) *Manager {
	return &Manager{
		healthGateway: healthGateway,
	}
}

// Manage registers a unit for supervised start/stop. Registration order is
// start order; stop happens in reverse.
func (m *Manager) Manage(unit sqsbundle.Managed) {
	m.managed = append(m.managed, unit)
}

// RegisterHealthCheck exposes the named check on the health endpoint.
func (m *Manager) RegisterHealthCheck(name string, check sqsbundle.HealthCheck) {
	m.healthGateway.RegisterCheck(name, check)
}

// StartAll starts every managed unit in registration order. The first
// failure aborts startup; already started units are stopped again.
func (m *Manager) StartAll(ctx context.Context) error {
	for _, unit := range m.managed {
		if err := unit.Start(ctx); err != nil {
			m.StopAll(ctx)
			return err
		}
		m.started++
	}
	return nil
}

// StopAll stops the started units in reverse order. Stop errors are logged,
// not propagated: shutdown keeps going so every unit gets its chance.
func (m *Manager) StopAll(ctx context.Context) {
	for i := m.started - 1; i >= 0; i-- {
		if err := m.managed[i].Stop(ctx); err != nil {
			log.Errorf("Failed to stop managed unit: %v", err)
		}
	}
	m.started = 0
}
