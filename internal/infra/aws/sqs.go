package aws

import (
	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/sqs"
)

func NewSqsClient() *sqs.Client {
	return sqs.NewFromConfig(Cfg, func(o *sqs.Options) {
		if endpoint := Endpoint(); endpoint != "" {
			o.BaseEndpoint = aws.String(endpoint)
		}
	})
}
