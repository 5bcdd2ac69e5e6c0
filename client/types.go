package client

import "time"

// Article is a processed news article as stored by the backend. The
// client never mutates articles; snapshots are replaced wholesale on
// every successful fetch.
type Article struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Content     string    `json:"content,omitempty"`
	URL         string    `json:"url"`
	PublishedAt time.Time `json:"published_at"`
	Source      string    `json:"source"`
	Category    string    `json:"category"`
	AISummary   string    `json:"ai_summary,omitempty"`
	AISocial    string    `json:"ai_social_post,omitempty"`
	ImageURL    string    `json:"image_url,omitempty"`
	ProcessedAt time.Time `json:"processed_at"`
	Posted      bool      `json:"posted"`
}

// NewsConfig controls what the backend pipeline fetches.
type NewsConfig struct {
	Category    string `json:"category"`
	Country     string `json:"country"`
	Language    string `json:"language"`
	MaxArticles int    `json:"max_articles"`
}

// PipelineStatus is the backend's report on its background pipeline.
type PipelineStatus struct {
	Running       bool       `json:"running"`
	TotalArticles int        `json:"total_articles"`
	Config        NewsConfig `json:"config"`
}

// TwitterStatus reports the social integration's configuration and
// connectivity state.
type TwitterStatus struct {
	Configured bool `json:"configured"`
	Connected  bool `json:"connected"`
}

// ProcessResult is the backend's response to a manual processing run.
type ProcessResult struct {
	Message   string `json:"message"`
	Processed int    `json:"processed"`
}
