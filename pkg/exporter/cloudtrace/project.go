package cloudtrace

import (
	"context"
	"errors"
	"fmt"
	"os"

	"golang.org/x/oauth2/google"

	"github.com/reggiemcdonald/opentelemetry-operations-go/pkg/config"
)

// traceScope is the OAuth scope required to append spans.
const traceScope = "https://www.googleapis.com/auth/trace.append"

// ErrMissingProjectID is returned when credentials resolve but carry
// no project, so the exporter cannot address span names.
var ErrMissingProjectID = errors.New("credentials carry no project id")

// resolveProjectID determines the project spans are written to. The
// explicit configuration wins, then the configured credentials, then
// Application Default Credentials.
func resolveProjectID(ctx context.Context, cfg *config.ExporterConfig) (string, error) {
	if cfg.ProjectID != "" {
		return cfg.ProjectID, nil
	}
	if cfg.CredentialsJSON != "" {
		return projectFromJSON(ctx, []byte(cfg.CredentialsJSON))
	}
	if cfg.CredentialsFile != "" {
		data, err := os.ReadFile(cfg.CredentialsFile)
		if err != nil {
			return "", fmt.Errorf("failed to read credentials file: %w", err)
		}
		return projectFromJSON(ctx, data)
	}
	creds, err := google.FindDefaultCredentials(ctx, traceScope)
	if err != nil {
		return "", fmt.Errorf("failed to resolve default credentials: %w", err)
	}
	if creds.ProjectID == "" {
		return "", ErrMissingProjectID
	}
	return creds.ProjectID, nil
}

func projectFromJSON(ctx context.Context, data []byte) (string, error) {
	creds, err := google.CredentialsFromJSON(ctx, data, traceScope)
	if err != nil {
		return "", fmt.Errorf("failed to parse credentials: %w", err)
	}
	if creds.ProjectID == "" {
		return "", ErrMissingProjectID
	}
	return creds.ProjectID, nil
}
