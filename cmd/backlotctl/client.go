package main

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/emin/backlot/internal/app/models"
	"github.com/emin/backlot/internal/app/models/dto"
)

// Client is a thin HTTP client over the Backlot admin API
type Client struct {
	baseURL string
	token   string
	http    *http.Client
}

// NewClient creates a client for the given server
func NewClient(baseURL, token string) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		token:   token,
		http:    &http.Client{Timeout: 30 * time.Second},
	}
}

type apiEnvelope struct {
	Data  json.RawMessage  `json:"data"`
	Error *dto.ErrorDetail `json:"error"`
}

func (c *Client) do(ctx context.Context, method, path string, body, out interface{}) error {
	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to encode request body: %w", err)
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+"/api/v1"+path, reader)
	if err != nil {
		return err
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read response: %w", err)
	}

	var envelope apiEnvelope
	if err := json.Unmarshal(raw, &envelope); err != nil {
		return fmt.Errorf("unexpected response from server (status %d)", resp.StatusCode)
	}

	if resp.StatusCode >= 400 {
		if envelope.Error != nil {
			return fmt.Errorf("%s (%s)", envelope.Error.Message, envelope.Error.Code)
		}
		return fmt.Errorf("server returned status %d", resp.StatusCode)
	}

	if out != nil && envelope.Data != nil {
		if err := json.Unmarshal(envelope.Data, out); err != nil {
			return fmt.Errorf("failed to decode response data: %w", err)
		}
	}
	return nil
}

// ListAvailability fetches the availability roster
func (c *Client) ListAvailability(ctx context.Context) ([]dto.AvailabilityResponse, error) {
	var records []dto.AvailabilityResponse
	if err := c.do(ctx, http.MethodGet, "/admin/availability", nil, &records); err != nil {
		return nil, err
	}
	return records, nil
}

// DeleteAvailability removes an availability record
func (c *Client) DeleteAvailability(ctx context.Context, id int64) error {
	return c.do(ctx, http.MethodDelete, fmt.Sprintf("/admin/availability/%d", id), nil, nil)
}

// ListPendingCredits fetches the review queue
func (c *Client) ListPendingCredits(ctx context.Context) ([]dto.CreditResponse, error) {
	var credits []dto.CreditResponse
	if err := c.do(ctx, http.MethodGet, "/admin/credits/pending", nil, &credits); err != nil {
		return nil, err
	}
	return credits, nil
}

// ApproveCredit approves a pending submission
func (c *Client) ApproveCredit(ctx context.Context, id int64) error {
	return c.do(ctx, http.MethodPost, fmt.Sprintf("/admin/credits/%d/approve", id), nil, nil)
}

// RejectCredit rejects a pending submission with a note
func (c *Client) RejectCredit(ctx context.Context, id int64, note string) error {
	return c.do(ctx, http.MethodPost, fmt.Sprintf("/admin/credits/%d/reject", id),
		dto.RejectCreditRequest{Note: note}, nil)
}

// GetStats fetches the community summary
func (c *Client) GetStats(ctx context.Context) (*models.CommunityStats, error) {
	var stats models.CommunityStats
	if err := c.do(ctx, http.MethodGet, "/admin/community/stats", nil, &stats); err != nil {
		return nil, err
	}
	return &stats, nil
}
