package tui

import (
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"newshub/client"
	"newshub/config"
)

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKeyPress(msg)
	case tea.WindowSizeMsg:
		return m.handleResize(msg)
	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	case ArticlesLoadedMsg:
		return m.handleArticlesLoaded(msg)
	case PipelineStatusMsg:
		return m.handlePipelineStatus(msg)
	case TwitterStatusMsg:
		return m.handleTwitterStatus(msg)
	case PipelineToggledMsg:
		return m.handlePipelineToggled(msg)
	case ManualProcessDoneMsg:
		return m.handleManualProcessDone(msg)
	case ArticlePostedMsg:
		return m.handleArticlePosted(msg)
	case ArticleDetailMsg:
		return m.handleArticleDetail(msg)
	case ConfigPushedMsg:
		return m.handleConfigPushed(msg)
	}
	return m, nil
}

// handleKeyPress processes keyboard input.
func (m Model) handleKeyPress(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c", "q":
		return m, tea.Quit

	case "esc":
		m.detail = nil
		return m, nil

	case "up", "k":
		if m.detail == nil && m.cursor > 0 {
			m.cursor--
			m.syncViewport()
		}
		return m, nil

	case "down", "j":
		if m.detail == nil && m.cursor < len(m.articles)-1 {
			m.cursor++
			m.syncViewport()
		}
		return m, nil

	case "enter":
		if m.detail != nil {
			m.detail = nil
			return m, nil
		}
		if a := m.selectedArticle(); a != nil {
			return m, loadDetail(m.ctx, m.client, a.ID)
		}
		return m, nil

	case "o":
		if a := m.selectedArticle(); a != nil && a.AISocial != "" {
			m.revealed[a.ID] = !m.revealed[a.ID]
			m.syncViewport()
		}
		return m, nil

	case "p":
		return m.handlePostKey()

	case "r":
		m.refreshing = true
		m.refreshQueue = []refreshStep{stepPipeline, stepTwitter}
		return m, m.nextArticlesFetch()

	case "s":
		return m, togglePipeline(m.ctx, m.client, true)

	case "x":
		return m, togglePipeline(m.ctx, m.client, false)

	case "m":
		m.refreshing = true
		return m, processManual(m.ctx, m.client)

	case "c":
		m.category = config.NextCategory(m.category)
		m.cursor = 0
		return m, m.nextArticlesFetch()

	case "C":
		category := m.category
		if category == "" {
			category = "general"
		}
		cfg := client.NewsConfig{
			Category:    category,
			Country:     "us",
			Language:    "en",
			MaxArticles: m.articleLimit,
		}
		return m, pushConfig(m.ctx, m.client, cfg)
	}

	// Remaining keys (pgup/pgdown etc.) scroll the article list.
	if m.ready && m.detail == nil {
		var cmd tea.Cmd
		m.viewport, cmd = m.viewport.Update(msg)
		return m, cmd
	}
	return m, nil
}

// handlePostKey triggers posting the selected article's social draft. The
// action is ignored while a post for that article is in flight or once the
// backend reports it posted.
func (m Model) handlePostKey() (tea.Model, tea.Cmd) {
	a := m.selectedArticle()
	if a == nil || a.AISocial == "" || a.Posted || m.posting[a.ID] {
		return m, nil
	}

	m.posting[a.ID] = true
	m.syncViewport()
	return m, postArticle(m.ctx, m.client, a.ID)
}

func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.width = msg.Width
	m.height = msg.Height

	listHeight := msg.Height - chromeHeight
	if listHeight < 1 {
		listHeight = 1
	}

	if !m.ready {
		m.viewport = viewport.New(msg.Width, listHeight)
		m.ready = true
	} else {
		m.viewport.Width = msg.Width
		m.viewport.Height = listHeight
	}

	m.syncViewport()
	return m, nil
}

// handleArticlesLoaded applies an articles fetch result. Stale results
// (an older fetch resolving after a newer one) are dropped.
func (m Model) handleArticlesLoaded(msg ArticlesLoadedMsg) (tea.Model, tea.Cmd) {
	if msg.Seq != m.articlesSeq {
		return m, nil
	}

	m.loading = false

	// The re-fetch following a post has resolved; the backend's posted
	// flag is authoritative again.
	for id := range m.awaitingRefetch {
		delete(m.posting, id)
		delete(m.awaitingRefetch, id)
	}

	if msg.Err != nil {
		m.errMsg = TextArticlesError
		m.logger.Error("failed to load articles", "error", msg.Err)
		return m, m.advanceRefresh()
	}

	m.articles = msg.Articles
	if m.cursor >= len(m.articles) {
		m.cursor = len(m.articles) - 1
	}
	if m.cursor < 0 {
		m.cursor = 0
	}

	m.syncViewport()
	return m, m.advanceRefresh()
}

func (m Model) handlePipelineStatus(msg PipelineStatusMsg) (tea.Model, tea.Cmd) {
	if msg.Seq != m.pipelineSeq {
		return m, nil
	}

	if msg.Err != nil {
		m.logger.Warn("failed to load pipeline status", "error", msg.Err)
		return m, m.advanceRefresh()
	}

	m.pipeline = msg.Status
	return m, m.advanceRefresh()
}

func (m Model) handleTwitterStatus(msg TwitterStatusMsg) (tea.Model, tea.Cmd) {
	if msg.Seq != m.twitterSeq {
		return m, nil
	}

	if msg.Err != nil {
		m.logger.Warn("failed to load twitter status", "error", msg.Err)
		return m, m.advanceRefresh()
	}

	m.twitter = msg.Status
	return m, m.advanceRefresh()
}

// handlePipelineToggled re-fetches pipeline status after a start or stop.
// The view never flips the running flag locally; whatever the backend
// reports is the truth.
func (m Model) handlePipelineToggled(msg PipelineToggledMsg) (tea.Model, tea.Cmd) {
	if msg.Err != nil {
		action := "stop"
		if msg.Started {
			action = "start"
		}
		m.logger.Error("failed to "+action+" pipeline", "error", msg.Err)
	}
	return m, m.nextPipelineFetch()
}

func (m Model) handleManualProcessDone(msg ManualProcessDoneMsg) (tea.Model, tea.Cmd) {
	if msg.Err != nil {
		m.logger.Error("manual processing failed", "error", msg.Err)
	} else if msg.Result != nil {
		m.logger.Info("manual processing complete", "processed", msg.Result.Processed)
	}

	// refreshing stays held through the follow-up re-fetches and is
	// released by the chain. Re-asserted here: an overlapping refresh
	// may have completed and dropped the flag while the run was in
	// flight.
	m.refreshing = true
	m.refreshQueue = []refreshStep{stepPipeline}
	return m, m.nextArticlesFetch()
}

func (m Model) handleArticlePosted(msg ArticlePostedMsg) (tea.Model, tea.Cmd) {
	if msg.Err != nil {
		m.logger.Error("failed to post article", "article_id", msg.ArticleID, "error", msg.Err)
	}

	m.awaitingRefetch[msg.ArticleID] = true
	return m, tea.Batch(m.nextArticlesFetch(), m.nextPipelineFetch())
}

func (m Model) handleArticleDetail(msg ArticleDetailMsg) (tea.Model, tea.Cmd) {
	if msg.Err != nil {
		m.logger.Warn("failed to load article detail", "error", msg.Err)
		return m, nil
	}

	m.detail = msg.Article
	return m, nil
}

func (m Model) handleConfigPushed(msg ConfigPushedMsg) (tea.Model, tea.Cmd) {
	if msg.Err != nil {
		m.logger.Error("failed to push config", "category", msg.Category, "error", msg.Err)
		return m, nil
	}

	m.logger.Info("backend config updated", "category", msg.Category)
	return m, m.nextPipelineFetch()
}
