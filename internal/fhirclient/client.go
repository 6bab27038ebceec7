package fhirclient

import (
	"context"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/rs/zerolog"

	"github.com/clindoc/clindoc/internal/platform/auth"
	"github.com/clindoc/clindoc/internal/platform/fhir"
)

// Client uploads bundles to the downstream FHIR service. All operations are
// fail-soft: they return a boolean and log the failure, never an error —
// callers treat false as "notify and move on", not as a branchable error.
type Client struct {
	http   *resty.Client
	logger zerolog.Logger
}

// New creates a client for the FHIR service at baseURL.
func New(baseURL string, timeout time.Duration, logger zerolog.Logger) *Client {
	httpClient := resty.New().
		SetBaseURL(baseURL).
		SetTimeout(timeout)
	return &Client{http: httpClient, logger: logger}
}

// UploadBundle posts the bundle to {base}/fhir/Bundle with the credential
// headers attached. Returns true only on a 2xx response.
func (c *Client) UploadBundle(ctx context.Context, bundle *fhir.Bundle, creds auth.Credentials) bool {
	resp, err := c.request(ctx, creds).
		SetHeader("Content-Type", "application/fhir+json").
		SetBody(bundle).
		Post("/fhir/Bundle")
	if err != nil {
		c.logger.Error().Err(err).Str("bundle_id", bundle.ID).Msg("bundle upload failed")
		return false
	}
	if resp.IsError() {
		c.logger.Error().
			Int("status", resp.StatusCode()).
			Str("bundle_id", bundle.ID).
			Str("body", resp.String()).
			Msg("bundle upload rejected")
		return false
	}
	return true
}

// Health probes {base}/fhir/health. Same fail-soft contract as UploadBundle.
func (c *Client) Health(ctx context.Context, creds auth.Credentials) bool {
	resp, err := c.request(ctx, creds).Get("/fhir/health")
	if err != nil {
		c.logger.Warn().Err(err).Msg("fhir service health check failed")
		return false
	}
	return !resp.IsError()
}

func (c *Client) request(ctx context.Context, creds auth.Credentials) *resty.Request {
	req := c.http.R().SetContext(ctx)
	if creds.HasToken() {
		req.SetHeader("Authorization", "Bearer "+creds.Token)
	}
	if creds.Role != "" {
		req.SetHeader("x-user-role", creds.Role)
	}
	if creds.Portal != "" {
		req.SetHeader("x-portal", creds.Portal)
	}
	if creds.UserID != "" {
		req.SetHeader("x-user-id", creds.UserID)
	}
	if creds.XSRFToken != "" {
		req.SetHeader("X-XSRF-TOKEN", creds.XSRFToken)
	}
	return req
}
