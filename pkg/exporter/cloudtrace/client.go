package cloudtrace

import (
	"context"
	"fmt"

	traceapi "cloud.google.com/go/trace/apiv2"
	"cloud.google.com/go/trace/apiv2/tracepb"
	"github.com/googleapis/gax-go/v2"
	"google.golang.org/api/option"

	"github.com/reggiemcdonald/opentelemetry-operations-go/pkg/config"
)

// batchWriter is the slice of the Cloud Trace client the exporter
// uses.
type batchWriter interface {
	BatchWriteSpans(ctx context.Context, req *tracepb.BatchWriteSpansRequest, opts ...gax.CallOption) error
}

// clientFactory builds the RPC client on first use.
type clientFactory func(ctx context.Context, cfg *config.ExporterConfig, userAgent string) (batchWriter, error)

// newTraceClient builds the Cloud Trace v2 client with the configured
// credentials, endpoint, and user agent.
func newTraceClient(ctx context.Context, cfg *config.ExporterConfig, userAgent string) (batchWriter, error) {
	opts := []option.ClientOption{option.WithUserAgent(userAgent)}
	if cfg.Endpoint != "" {
		opts = append(opts, option.WithEndpoint(cfg.Endpoint))
	}
	if cfg.CredentialsFile != "" {
		opts = append(opts, option.WithCredentialsFile(cfg.CredentialsFile))
	}
	if cfg.CredentialsJSON != "" {
		opts = append(opts, option.WithCredentialsJSON([]byte(cfg.CredentialsJSON)))
	}
	client, err := traceapi.NewClient(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to create trace client: %w", err)
	}
	return client, nil
}
