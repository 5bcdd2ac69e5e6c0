package tui

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"

	"newshub/client"
)

// loadArticles creates a command to fetch the article snapshot.
func loadArticles(ctx context.Context, c *client.Client, seq, limit int, category string) tea.Cmd {
	return func() tea.Msg {
		articles, err := c.GetArticles(ctx, limit, category)
		return ArticlesLoadedMsg{Seq: seq, Articles: articles, Err: err}
	}
}

// loadPipelineStatus creates a command to fetch the pipeline snapshot.
func loadPipelineStatus(ctx context.Context, c *client.Client, seq int) tea.Cmd {
	return func() tea.Msg {
		status, err := c.GetPipelineStatus(ctx)
		return PipelineStatusMsg{Seq: seq, Status: status, Err: err}
	}
}

// loadTwitterStatus creates a command to fetch the integration snapshot.
func loadTwitterStatus(ctx context.Context, c *client.Client, seq int) tea.Cmd {
	return func() tea.Msg {
		status, err := c.GetTwitterStatus(ctx)
		return TwitterStatusMsg{Seq: seq, Status: status, Err: err}
	}
}

// togglePipeline creates a command to start or stop the backend pipeline.
func togglePipeline(ctx context.Context, c *client.Client, start bool) tea.Cmd {
	return func() tea.Msg {
		var err error
		if start {
			err = c.StartPipeline(ctx)
		} else {
			err = c.StopPipeline(ctx)
		}
		return PipelineToggledMsg{Started: start, Err: err}
	}
}

// processManual creates a command to trigger a one-off processing run.
func processManual(ctx context.Context, c *client.Client) tea.Cmd {
	return func() tea.Msg {
		result, err := c.ProcessManual(ctx)
		return ManualProcessDoneMsg{Result: result, Err: err}
	}
}

// postArticle creates a command to post one article's social draft.
func postArticle(ctx context.Context, c *client.Client, articleID string) tea.Cmd {
	return func() tea.Msg {
		err := c.PostToTwitter(ctx, articleID)
		return ArticlePostedMsg{ArticleID: articleID, Err: err}
	}
}

// loadDetail creates a command to fetch one article with full content.
func loadDetail(ctx context.Context, c *client.Client, articleID string) tea.Cmd {
	return func() tea.Msg {
		article, err := c.GetArticle(ctx, articleID)
		return ArticleDetailMsg{Article: article, Err: err}
	}
}

// pushConfig creates a command to push a new fetching config to the backend.
func pushConfig(ctx context.Context, c *client.Client, cfg client.NewsConfig) tea.Cmd {
	return func() tea.Msg {
		err := c.UpdateConfig(ctx, cfg)
		return ConfigPushedMsg{Category: cfg.Category, Err: err}
	}
}
