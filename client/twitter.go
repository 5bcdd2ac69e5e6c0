package client

import (
	"context"
	"net/http"
)

// GetTwitterStatus fetches the social integration's state.
func (c *Client) GetTwitterStatus(ctx context.Context) (*TwitterStatus, error) {
	var status TwitterStatus
	if err := c.doJSONRequest(ctx, http.MethodGet, "/twitter/status", nil, &status); err != nil {
		return nil, err
	}

	return &status, nil
}

// PostToTwitter asks the backend to publish the article's AI-authored
// social post. The article's posted flag is backend-owned; callers should
// re-fetch articles afterwards rather than flip it locally.
func (c *Client) PostToTwitter(ctx context.Context, articleID string) error {
	payload := map[string]string{"article_id": articleID}
	return c.doJSONRequest(ctx, http.MethodPost, "/twitter/post", payload, nil)
}
