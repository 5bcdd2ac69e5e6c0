package client

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
)

// GetArticles fetches the latest processed articles, newest first, capped
// at limit. An empty category means no filter.
func (c *Client) GetArticles(ctx context.Context, limit int, category string) ([]Article, error) {
	query := url.Values{}
	query.Set("limit", strconv.Itoa(limit))
	if category != "" {
		query.Set("category", category)
	}

	var articles []Article
	if err := c.doJSONRequest(ctx, http.MethodGet, "/articles?"+query.Encode(), nil, &articles); err != nil {
		return nil, err
	}

	return articles, nil
}

// GetArticle fetches a single article by id, including its full content.
func (c *Client) GetArticle(ctx context.Context, id string) (*Article, error) {
	var article Article
	path := fmt.Sprintf("/articles/%s", url.PathEscape(id))
	if err := c.doJSONRequest(ctx, http.MethodGet, path, nil, &article); err != nil {
		return nil, err
	}

	return &article, nil
}
