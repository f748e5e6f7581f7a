package permission

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

var _ Client = (*HTTPClient)(nil)

// HTTPClient implements Client against the permission service's internal
// HTTP API.
type HTTPClient struct {
	baseURL    string
	httpClient *http.Client
	logger     *zap.SugaredLogger
}

func NewHTTPClient(logger *zap.SugaredLogger, baseURL string) *HTTPClient {
	return &HTTPClient{
		baseURL: strings.TrimSuffix(baseURL, "/"),
		httpClient: &http.Client{
			Timeout: 5 * time.Second,
		},
		logger: logger,
	}
}

func (c *HTTPClient) HasPermission(ctx context.Context, playerId uuid.UUID, node string) (bool, error) {
	url := fmt.Sprintf("%s/players/%s/permissions/%s", c.baseURL, playerId, node)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return false, fmt.Errorf("failed to create permission check request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return false, fmt.Errorf("failed to check permission: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return false, fmt.Errorf("permission service returned status %d", resp.StatusCode)
	}

	var payload struct {
		Allowed bool `json:"allowed"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return false, fmt.Errorf("failed to decode permission response: %w", err)
	}

	return payload.Allowed, nil
}

func (c *HTTPClient) Grant(ctx context.Context, playerId uuid.UUID, node string) error {
	url := fmt.Sprintf("%s/players/%s/permissions", c.baseURL, playerId)

	body, err := json.Marshal(struct {
		Node string `json:"node"`
	}{Node: node})
	if err != nil {
		return fmt.Errorf("failed to marshal grant request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewBuffer(body))
	if err != nil {
		return fmt.Errorf("failed to create grant request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("failed to grant permission: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusCreated {
		return fmt.Errorf("permission service returned status %d", resp.StatusCode)
	}

	c.logger.Debugw("granted permission", "playerId", playerId, "node", node)
	return nil
}

func (c *HTTPClient) Revoke(ctx context.Context, playerId uuid.UUID, node string) error {
	url := fmt.Sprintf("%s/players/%s/permissions/%s", c.baseURL, playerId, node)

	req, err := http.NewRequestWithContext(ctx, http.MethodDelete, url, nil)
	if err != nil {
		return fmt.Errorf("failed to create revoke request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("failed to revoke permission: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusNoContent {
		return fmt.Errorf("permission service returned status %d", resp.StatusCode)
	}

	c.logger.Debugw("revoked permission", "playerId", playerId, "node", node)
	return nil
}
