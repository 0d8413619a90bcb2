package output

import (
	"bytes"
	"context"
	"log/slog"
	"os"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"

	"github.com/topus-dev/topus/internal/errors"
)

// HTMLContentType is the content type of uploaded documents.
const HTMLContentType = "text/html; charset=utf-8"

// PutObjectAPI is the part of *s3.Client used by S3Sink.
type PutObjectAPI interface {
	PutObject(ctx context.Context, params *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error)
}

// S3Sink uploads documents to an S3 bucket.
//
// Example usage:
//
//	client := output.NewS3Client(output.S3ClientOptions{Region: "eu-west-1"})
//	sink := output.NewS3Sink(client, "my-bucket", "site/")
//	err := sink.Write(ctx, "index.html", []byte(doc.String()))
type S3Sink struct {
	client PutObjectAPI
	bucket string
	prefix string

	// ContentType defaults to HTMLContentType.
	ContentType string

	// Logger receives one line per successful upload.
	Logger *slog.Logger
}

// NewS3Sink creates an S3 sink. prefix is prepended to every key.
func NewS3Sink(client PutObjectAPI, bucket, prefix string) *S3Sink {
	return &S3Sink{
		client:      client,
		bucket:      bucket,
		prefix:      prefix,
		ContentType: HTMLContentType,
	}
}

// Write uploads content under prefix+key.
func (s *S3Sink) Write(ctx context.Context, key string, content []byte) error {
	fullKey := s.prefix + key
	location := "s3://" + s.bucket + "/" + fullKey

	contentType := s.ContentType
	if contentType == "" {
		contentType = HTMLContentType
	}

	_, err := s.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:        aws.String(s.bucket),
		Key:           aws.String(fullKey),
		Body:          bytes.NewReader(content),
		ContentLength: aws.Int64(int64(len(content))),
		ContentType:   aws.String(contentType),
		Metadata: map[string]string{
			"generator": "topus",
		},
	})
	if err != nil {
		return errors.New("T101").WithPath(location).Wrap(err)
	}

	loggerOrDefault(s.Logger).Info("uploaded output", "location", location, "bytes", len(content))
	return nil
}

// S3ClientOptions configures NewS3Client.
type S3ClientOptions struct {
	Region string

	// Endpoint overrides the service endpoint (MinIO, localstack).
	Endpoint string

	// PathStyle addresses buckets as endpoint/bucket instead of
	// bucket.endpoint.
	PathStyle bool
}

// NewS3Client creates an S3 client with credentials from the standard
// AWS_ACCESS_KEY_ID, AWS_SECRET_ACCESS_KEY and AWS_SESSION_TOKEN variables.
func NewS3Client(opts S3ClientOptions) *s3.Client {
	o := s3.Options{
		Region:       opts.Region,
		UsePathStyle: opts.PathStyle,
		Credentials:  aws.NewCredentialsCache(aws.CredentialsProviderFunc(envCredentials)),
	}
	if opts.Endpoint != "" {
		o.BaseEndpoint = aws.String(opts.Endpoint)
	}
	return s3.New(o)
}

func envCredentials(context.Context) (aws.Credentials, error) {
	creds := aws.Credentials{
		AccessKeyID:     os.Getenv("AWS_ACCESS_KEY_ID"),
		SecretAccessKey: os.Getenv("AWS_SECRET_ACCESS_KEY"),
		SessionToken:    os.Getenv("AWS_SESSION_TOKEN"),
		Source:          "EnvironmentVariables",
	}
	if creds.AccessKeyID == "" || creds.SecretAccessKey == "" {
		return aws.Credentials{}, errors.New("T102").
			WithDetail("AWS_ACCESS_KEY_ID and AWS_SECRET_ACCESS_KEY must be set")
	}
	return creds, nil
}
