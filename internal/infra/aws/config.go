package aws

import (
	"context"
	"log"

	"sqs-bundle/pkg/resource"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
)

var Cfg aws.Config

// init resolves the AWS configuration once at startup. Credential or region
// problems are fatal: nothing in the service can function without them.
func init() {
	opts := []func(*config.LoadOptions) error{
		config.WithRegion(resource.GetString("app.cloud.aws-region")),
	}

	// Static credentials when provided; otherwise the SDK falls back to the
	// default chain (environment variables, shared profile, IAM roles).
	if accessKey := resource.GetString("app.cloud.aws-access-key-id"); accessKey != "" {
		secretKey := resource.GetString("app.cloud.aws-secret-access-key")
		if secretKey != "" {
			opts = append(opts, config.WithCredentialsProvider(
				credentials.NewStaticCredentialsProvider(accessKey, secretKey, ""),
			))
		}
	}

	cfg, err := config.LoadDefaultConfig(context.Background(), opts...)
	if err != nil {
		log.Fatalf("Failed to load AWS config: %v", err)
	}

	Cfg = cfg
}

// Endpoint returns the configured endpoint override (e.g. LocalStack), or
// an empty string when the default AWS endpoints apply.
func Endpoint() string {
	return resource.GetString("app.cloud.aws-endpoint")
}
