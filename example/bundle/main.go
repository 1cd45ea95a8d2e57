package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"sqs-bundle/pkg/log"
	"sqs-bundle/pkg/sqsbundle"

	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/sqs"
)

// lifecycle is a minimal host: it starts managed units immediately and logs
// health check registrations.
type lifecycle struct {
	units []sqsbundle.Managed
}

func (l *lifecycle) Manage(m sqsbundle.Managed) {
	l.units = append(l.units, m)
}

func (l *lifecycle) RegisterHealthCheck(name string, check sqsbundle.HealthCheck) {
	log.Infof("Registered health check %q", name)
}

type greeting struct {
	Name string `json:"name"`
}

func main() {
	ctx := context.Background()

	// Load AWS configuration
	cfg, err := config.LoadDefaultConfig(ctx,
		config.WithRegion("us-west-2"),
	)
	if err != nil {
		log.Fatalf("Failed to load AWS config: %v", err)
	}

	host := &lifecycle{}
	bundle := sqsbundle.New(sqs.NewFromConfig(cfg), host)

	// Queues are created on first use when absent
	sender, err := bundle.CreateSender(ctx, "greetings")
	if err != nil {
		log.Fatalf("Failed to create sender: %v", err)
	}

	sqsbundle.RegisterReceiver(ctx, bundle, "greetings",
		sqsbundle.HandlerFunc[greeting](func(ctx context.Context, g greeting) error {
			log.Infof("Hello, %s", g.Name)
			return nil
		}),
		sqsbundle.WithExceptionPolicy(sqsbundle.RetryOnError),
	)

	for _, unit := range host.units {
		if err := unit.Start(ctx); err != nil {
			log.Fatalf("Failed to start managed unit: %v", err)
		}
	}

	if err := sender.Send(ctx, greeting{Name: "world"}); err != nil {
		log.Errorf("Failed to send greeting: %v", err)
	}

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	for _, unit := range host.units {
		if err := unit.Stop(ctx); err != nil {
			log.Errorf("Failed to stop managed unit: %v", err)
		}
	}
}
