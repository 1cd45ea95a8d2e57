package sqsbundle

import (
	"context"
	"errors"
	"strings"
	"sync/atomic"
	"testing"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/sqs"
	"github.com/aws/aws-sdk-go-v2/service/sqs/types"
)

func TestNew_RegistersBundleWithLifecycle(t *testing.T) {
	lc := newMockLifecycle()

	b := New(&mockSQSClient{}, lc)

	if b == nil {
		t.Fatal("expected non-nil bundle")
	}
	if len(lc.managed) != 1 {
		t.Fatalf("expected 1 managed unit, got %d", len(lc.managed))
	}
	if _, ok := lc.healthChecks["sqs-bundle"]; !ok {
		t.Error("expected health check registered under 'sqs-bundle'")
	}
}

func TestBundle_StartStopAreNoOps(t *testing.T) {
	b := New(&mockSQSClient{}, newMockLifecycle())

	ctx := context.Background()
	if err := b.Start(ctx); err != nil {
		t.Errorf("Start failed: %v", err)
	}
	if err := b.Stop(ctx); err != nil {
		t.Errorf("Stop failed: %v", err)
	}
}

func TestCreateSender_ResolvesQueue(t *testing.T) {
	client := &mockSQSClient{
		getQueueUrlFunc: func(_ context.Context, input *sqs.GetQueueUrlInput, _ ...func(*sqs.Options)) (*sqs.GetQueueUrlOutput, error) {
			if *input.QueueName != "orders" {
				t.Errorf("expected queue name 'orders', got %q", *input.QueueName)
			}
			return &sqs.GetQueueUrlOutput{
				QueueUrl: aws.String("https://sqs.us-east-1.amazonaws.com/123456789/orders"),
			}, nil
		},
	}

	b := New(client, newMockLifecycle())

	sender, err := b.CreateSender(context.Background(), "orders")
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if sender.QueueName() != "orders" {
		t.Errorf("expected queue name 'orders', got %q", sender.QueueName())
	}
	if sender.queueURL != "https://sqs.us-east-1.amazonaws.com/123456789/orders" {
		t.Errorf("unexpected queue URL %q", sender.queueURL)
	}
}

func TestCreateSender_QueueUnavailable(t *testing.T) {
	client := &mockSQSClient{
		getQueueUrlFunc: func(_ context.Context, _ *sqs.GetQueueUrlInput, _ ...func(*sqs.Options)) (*sqs.GetQueueUrlOutput, error) {
			return nil, errors.New("access denied")
		},
	}

	b := New(client, newMockLifecycle())

	_, err := b.CreateSender(context.Background(), "orders")
	if err == nil {
		t.Fatal("expected error when queue lookup fails")
	}
	if !errors.Is(err, ErrQueueUnavailable) {
		t.Errorf("expected ErrQueueUnavailable, got %v", err)
	}
}

func TestUrlForQueue_CreatesMissingQueue(t *testing.T) {
	var created atomic.Bool
	var createCalls atomic.Int32

	client := &mockSQSClient{
		getQueueUrlFunc: func(_ context.Context, _ *sqs.GetQueueUrlInput, _ ...func(*sqs.Options)) (*sqs.GetQueueUrlOutput, error) {
			if created.Load() {
				return &sqs.GetQueueUrlOutput{
					QueueUrl: aws.String("https://sqs.example.com/orders"),
				}, nil
			}
			return nil, &types.QueueDoesNotExist{}
		},
		createQueueFunc: func(_ context.Context, input *sqs.CreateQueueInput, _ ...func(*sqs.Options)) (*sqs.CreateQueueOutput, error) {
			createCalls.Add(1)
			created.Store(true)
			if *input.QueueName != "orders" {
				t.Errorf("expected queue name 'orders', got %q", *input.QueueName)
			}
			return &sqs.CreateQueueOutput{
				QueueUrl: aws.String("https://sqs.example.com/orders"),
			}, nil
		},
	}

	b := New(client, newMockLifecycle())
	ctx := context.Background()

	first, err := b.urlForQueue(ctx, "orders")
	if err != nil {
		t.Fatalf("first resolve failed: %v", err)
	}

	second, err := b.urlForQueue(ctx, "orders")
	if err != nil {
		t.Fatalf("second resolve failed: %v", err)
	}

	if first != second {
		t.Errorf("expected same address, got %q and %q", first, second)
	}
	if createCalls.Load() != 1 {
		t.Errorf("expected queue created exactly once, got %d", createCalls.Load())
	}
}

func TestUrlForQueue_CreationFails(t *testing.T) {
	client := &mockSQSClient{
		getQueueUrlFunc: func(_ context.Context, _ *sqs.GetQueueUrlInput, _ ...func(*sqs.Options)) (*sqs.GetQueueUrlOutput, error) {
			return nil, &types.QueueDoesNotExist{}
		},
		createQueueFunc: func(_ context.Context, _ *sqs.CreateQueueInput, _ ...func(*sqs.Options)) (*sqs.CreateQueueOutput, error) {
			return nil, errors.New("creation refused")
		},
	}

	b := New(client, newMockLifecycle())

	_, err := b.urlForQueue(context.Background(), "orders")
	if !errors.Is(err, ErrQueueUnavailable) {
		t.Errorf("expected ErrQueueUnavailable, got %v", err)
	}
}

func TestRegisterReceiver_RegistersManagedUnitAndHealthCheck(t *testing.T) {
	client := &mockSQSClient{
		getQueueUrlFunc: func(_ context.Context, _ *sqs.GetQueueUrlInput, _ ...func(*sqs.Options)) (*sqs.GetQueueUrlOutput, error) {
			return &sqs.GetQueueUrlOutput{QueueUrl: aws.String("https://sqs.example.com/orders")}, nil
		},
	}

	lc := newMockLifecycle()
	b := New(client, lc)

	handler := HandlerFunc[string](func(_ context.Context, _ string) error { return nil })
	RegisterReceiver(context.Background(), b, "orders", handler)

	// bundle + receiver
	if len(lc.managed) != 2 {
		t.Fatalf("expected 2 managed units, got %d", len(lc.managed))
	}
	if _, ok := lc.healthChecks["SQS receiver for orders"]; !ok {
		t.Error("expected health check registered under 'SQS receiver for orders'")
	}
}

func TestRegisterReceiver_RefusedWhenResolutionFails(t *testing.T) {
	client := &mockSQSClient{
		getQueueUrlFunc: func(_ context.Context, _ *sqs.GetQueueUrlInput, _ ...func(*sqs.Options)) (*sqs.GetQueueUrlOutput, error) {
			return nil, &types.QueueDoesNotExist{}
		},
		createQueueFunc: func(_ context.Context, _ *sqs.CreateQueueInput, _ ...func(*sqs.Options)) (*sqs.CreateQueueOutput, error) {
			return nil, errors.New("creation refused")
		},
	}

	lc := newMockLifecycle()
	b := New(client, lc)

	handler := HandlerFunc[string](func(_ context.Context, _ string) error { return nil })
	RegisterReceiver(context.Background(), b, "orders", handler)

	if len(lc.managed) != 1 {
		t.Errorf("expected no receiver registered, got %d managed units", len(lc.managed))
	}
	if _, ok := lc.healthChecks["SQS receiver for orders"]; ok {
		t.Error("expected no receiver health check")
	}
}

func TestRegisterReceiver_RefusedWhenOptionsInvalid(t *testing.T) {
	client := &mockSQSClient{
		getQueueUrlFunc: func(_ context.Context, _ *sqs.GetQueueUrlInput, _ ...func(*sqs.Options)) (*sqs.GetQueueUrlOutput, error) {
			return &sqs.GetQueueUrlOutput{QueueUrl: aws.String("https://sqs.example.com/orders")}, nil
		},
	}

	lc := newMockLifecycle()
	b := New(client, lc)

	handler := HandlerFunc[string](func(_ context.Context, _ string) error { return nil })
	RegisterReceiver(context.Background(), b, "orders", handler, WithMaxNumberOfMessages(11))

	if len(lc.managed) != 1 {
		t.Errorf("expected no receiver registered, got %d managed units", len(lc.managed))
	}
}

func TestBundleHealthCheck_Healthy(t *testing.T) {
	client := &mockSQSClient{
		listQueuesFunc: func(_ context.Context, input *sqs.ListQueuesInput, _ ...func(*sqs.Options)) (*sqs.ListQueuesOutput, error) {
			if aws.ToInt32(input.MaxResults) != 1 {
				t.Errorf("expected MaxResults 1, got %d", aws.ToInt32(input.MaxResults))
			}
			return &sqs.ListQueuesOutput{}, nil
		},
	}

	b := New(client, newMockLifecycle())

	if err := b.HealthCheck()(context.Background()); err != nil {
		t.Errorf("expected healthy, got %v", err)
	}
}

func TestBundleHealthCheck_UnreachableBackend(t *testing.T) {
	client := &mockSQSClient{
		listQueuesFunc: func(_ context.Context, _ *sqs.ListQueuesInput, _ ...func(*sqs.Options)) (*sqs.ListQueuesOutput, error) {
			return nil, errors.New("connection refused")
		},
	}

	b := New(client, newMockLifecycle())

	err := b.HealthCheck()(context.Background())
	if err == nil {
		t.Fatal("expected unhealthy")
	}
	if !strings.Contains(err.Error(), "connection refused") {
		t.Errorf("expected reason to carry the cause, got %q", err.Error())
	}
}
