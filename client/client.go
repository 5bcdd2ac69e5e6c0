package client

import (
	"net/http"
	"time"
)

// Client is a thin HTTP client for the News Hub backend API.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// New creates a backend API client. All endpoints live under baseURL + "/api".
func New(baseURL string, timeout time.Duration) *Client {
	if baseURL == "" {
		baseURL = "http://localhost:8000"
	}
	if timeout <= 0 {
		timeout = 15 * time.Second
	}
	return &Client{
		baseURL:    baseURL,
		httpClient: &http.Client{Timeout: timeout},
	}
}
