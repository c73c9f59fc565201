package notify

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"motorover/models"

	"go.uber.org/zap"
)

// HTTPCRMClient posts leads to the CRM's REST API.
type HTTPCRMClient struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
	logger     *zap.Logger
}

// NewHTTPCRMClient builds a CRM client. An empty baseURL disables lead
// creation: CreateLead logs and succeeds, so environments without a CRM keep
// working.
func NewHTTPCRMClient(baseURL, apiKey string, timeout time.Duration, logger *zap.Logger) *HTTPCRMClient {
	return &HTTPCRMClient{
		baseURL: baseURL,
		apiKey:  apiKey,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		logger: logger,
	}
}

// CreateLead registers the contact in the CRM.
func (c *HTTPCRMClient) CreateLead(ctx context.Context, lead models.Lead) error {
	if c.baseURL == "" {
		c.logger.Debug("crm: no API URL configured, skipping lead creation",
			zap.String("email", lead.Email))
		return nil
	}

	payload, err := json.Marshal(lead)
	if err != nil {
		return fmt.Errorf("failed to encode lead: %w", err)
	}

	url := c.baseURL + "/leads"
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(payload))
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if c.apiKey != "" {
		req.Header.Set("Authorization", "Bearer "+c.apiKey)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("failed to execute request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		body, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("unexpected status code %d: %s", resp.StatusCode, string(body))
	}
	return nil
}
