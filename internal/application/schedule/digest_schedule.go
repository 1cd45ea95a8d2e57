package schedule

import (
	"context"
	"time"

	"sqs-bundle/internal/domain/gateway/queue"
	"sqs-bundle/internal/domain/model"
	"sqs-bundle/pkg/log"

	"github.com/google/uuid"
	"github.com/robfig/cron/v3"
	"go.uber.org/zap"
)

// DigestScheduler periodically publishes a digest event so downstream
// consumers can roll up the day's orders.
type DigestScheduler struct {
	cron           *cron.Cron
	sender         queue.Sender
	cronExpression string
}

func NewDigestScheduler(sender queue.Sender, cronExpression string) *DigestScheduler {
	return &DigestScheduler{
		cron:           cron.New(),
		sender:         sender,
		cronExpression: cronExpression,
	}
}

// InitDigestScheduleTasks registers and starts the digest cron task.
func (s *DigestScheduler) InitDigestScheduleTasks() {
	_, err := s.cron.AddFunc(s.cronExpression, s.ExecuteScheduledTask)
	if err != nil {
		log.Errorf("Failed to initialize digest scheduler, cron will not be started: %v", err)
		return
	}

	s.cron.Start()
	log.Infof("Digest scheduler started with cron expression: %s", s.cronExpression)
}

// ExecuteScheduledTask publishes one digest event.
func (s *DigestScheduler) ExecuteScheduledTask() {
	requestID := uuid.New().String()

	log.Info("Digest task triggered", zap.String("request_id", requestID))

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	event := model.DigestEvent{
		RequestID:   requestID,
		GeneratedAt: time.Now().UTC(),
	}

	if err := s.sender.Send(ctx, event); err != nil {
		log.Error("Failed to publish digest event", zap.String("request_id", requestID), zap.Error(err))
		return
	}

	log.Info("Digest event published", zap.String("request_id", requestID), zap.String("queue", s.sender.QueueName()))
}

// Stop gracefully stops the scheduler, waiting for a running task to finish.
func (s *DigestScheduler) Stop() {
	if s.cron != nil {
		ctx := s.cron.Stop()
		<-ctx.Done()
	}
}
