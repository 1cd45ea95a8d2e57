package sqsbundle

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/sqs"
)

func TestSender_EncodesPayloadAsJSON(t *testing.T) {
	var sent *sqs.SendMessageInput
	client := &mockSQSClient{
		sendMessageFunc: func(_ context.Context, input *sqs.SendMessageInput, _ ...func(*sqs.Options)) (*sqs.SendMessageOutput, error) {
			sent = input
			return &sqs.SendMessageOutput{MessageId: aws.String("m-1")}, nil
		},
	}

	s := newSender(client, "orders", "https://sqs.example.com/orders")

	err := s.Send(context.Background(), testPayload{Name: "world"})
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	if sent == nil {
		t.Fatal("expected a message to be sent")
	}
	if aws.ToString(sent.QueueUrl) != "https://sqs.example.com/orders" {
		t.Errorf("unexpected queue URL %q", aws.ToString(sent.QueueUrl))
	}

	var decoded testPayload
	if err := json.Unmarshal([]byte(aws.ToString(sent.MessageBody)), &decoded); err != nil {
		t.Fatalf("message body is not valid JSON: %v", err)
	}
	if decoded.Name != "world" {
		t.Errorf("expected payload name 'world', got %q", decoded.Name)
	}
}

func TestSender_PropagatesBackendError(t *testing.T) {
	backendErr := errors.New("service unavailable")
	client := &mockSQSClient{
		sendMessageFunc: func(_ context.Context, _ *sqs.SendMessageInput, _ ...func(*sqs.Options)) (*sqs.SendMessageOutput, error) {
			return nil, backendErr
		},
	}

	s := newSender(client, "orders", "https://sqs.example.com/orders")

	err := s.Send(context.Background(), testPayload{Name: "world"})
	if !errors.Is(err, backendErr) {
		t.Errorf("expected wrapped backend error, got %v", err)
	}
}

func TestSender_EncodeFailureSendsNothing(t *testing.T) {
	var sends int
	client := &mockSQSClient{
		sendMessageFunc: func(_ context.Context, _ *sqs.SendMessageInput, _ ...func(*sqs.Options)) (*sqs.SendMessageOutput, error) {
			sends++
			return &sqs.SendMessageOutput{}, nil
		},
	}

	s := newSender(client, "orders", "https://sqs.example.com/orders")

	// Channels are not JSON-encodable.
	err := s.Send(context.Background(), make(chan int))
	if err == nil {
		t.Fatal("expected encoding error")
	}
	if sends != 0 {
		t.Errorf("expected no send attempt, got %d", sends)
	}
}

func TestSender_CustomCodec(t *testing.T) {
	var sent *sqs.SendMessageInput
	client := &mockSQSClient{
		sendMessageFunc: func(_ context.Context, input *sqs.SendMessageInput, _ ...func(*sqs.Options)) (*sqs.SendMessageOutput, error) {
			sent = input
			return &sqs.SendMessageOutput{}, nil
		},
	}

	codec := staticCodec{encoded: "encoded-body"}
	s := newSender(client, "orders", "https://sqs.example.com/orders", WithSenderCodec(codec))

	if err := s.Send(context.Background(), testPayload{Name: "world"}); err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if aws.ToString(sent.MessageBody) != "encoded-body" {
		t.Errorf("expected codec output as body, got %q", aws.ToString(sent.MessageBody))
	}
}

type staticCodec struct {
	encoded string
}

func (c staticCodec) Encode(any) (string, error) {
	return c.encoded, nil
}

func (c staticCodec) Decode(string, any) error {
	return nil
}
