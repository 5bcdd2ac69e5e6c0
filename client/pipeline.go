package client

import (
	"context"
	"net/http"
)

// GetPipelineStatus fetches the current state of the background pipeline.
func (c *Client) GetPipelineStatus(ctx context.Context) (*PipelineStatus, error) {
	var status PipelineStatus
	if err := c.doJSONRequest(ctx, http.MethodGet, "/pipeline/status", nil, &status); err != nil {
		return nil, err
	}

	return &status, nil
}

// StartPipeline asks the backend to start its background pipeline. The
// resulting state is only known after a subsequent status fetch.
func (c *Client) StartPipeline(ctx context.Context) error {
	return c.doJSONRequest(ctx, http.MethodPost, "/pipeline/start", nil, nil)
}

// StopPipeline asks the backend to stop its background pipeline.
func (c *Client) StopPipeline(ctx context.Context) error {
	return c.doJSONRequest(ctx, http.MethodPost, "/pipeline/stop", nil, nil)
}

// ProcessManual triggers a one-off fetch-and-process run on the backend.
func (c *Client) ProcessManual(ctx context.Context) (*ProcessResult, error) {
	var result ProcessResult
	if err := c.doJSONRequest(ctx, http.MethodPost, "/process-manual", nil, &result); err != nil {
		return nil, err
	}

	return &result, nil
}

// UpdateConfig pushes a new fetching configuration to the backend.
func (c *Client) UpdateConfig(ctx context.Context, cfg NewsConfig) error {
	return c.doJSONRequest(ctx, http.MethodPost, "/config", cfg, nil)
}
