package sqsbundle

import (
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/sqs"
)

// Sender submits payloads to one queue. The queue URL is resolved once at
// construction time and held for the Sender's lifetime.
//
// Send performs no retries; callers that want retry semantics own them.
type Sender struct {
	client    SQSClient
	queueName string
	queueURL  string
	codec     Codec
}

func newSender(client SQSClient, queueName, queueURL string, opts ...SenderOption) *Sender {
	s := &Sender{
		client:    client,
		queueName: queueName,
		queueURL:  queueURL,
		codec:     JSONCodec{},
	}

	for _, opt := range opts {
		opt(s)
	}

	return s
}

// QueueName returns the logical name of the bound queue.
func (s *Sender) QueueName() string {
	return s.queueName
}

// Send encodes the payload with the configured codec and submits it to the
// bound queue. Encoding failures and backend failures are both returned as
// errors.
func (s *Sender) Send(ctx context.Context, payload any) error {
	body, err := s.codec.Encode(payload)
	if err != nil {
		return fmt.Errorf("failed to encode message for queue %s: %w", s.queueName, err)
	}

	_, err = s.client.SendMessage(ctx, &sqs.SendMessageInput{
		QueueUrl:    aws.String(s.queueURL),
		MessageBody: aws.String(body),
	})
	if err != nil {
		return fmt.Errorf("failed to send message to queue %s: %w", s.queueName, err)
	}

	return nil
}
