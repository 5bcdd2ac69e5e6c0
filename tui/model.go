package tui

import (
	"context"
	"log/slog"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"newshub/client"
	"newshub/config"
)

// Model is the single owner of all view state. Commands run concurrently
// against the backend but only this model, updated on bubbletea's one
// Update goroutine, ever writes a snapshot.
type Model struct {
	ctx    context.Context
	client *client.Client
	logger *slog.Logger

	articleLimit int

	// Snapshots, each replaced wholesale by the latest successful fetch.
	articles []client.Article
	pipeline *client.PipelineStatus
	twitter  *client.TwitterStatus

	// Transient UI state, rebuilt every render.
	loading    bool
	refreshing bool
	posting    map[string]bool
	errMsg     string

	// Articles whose post request finished and are waiting for the
	// follow-up article fetch to land; their post action stays disabled
	// until the backend's posted flag is authoritative again.
	awaitingRefetch map[string]bool

	cursor   int
	revealed map[string]bool
	detail   *client.Article
	category string

	// Per-kind fetch sequence numbers. A result message is applied only
	// when its sequence matches the latest issued for that kind.
	articlesSeq int
	pipelineSeq int
	twitterSeq  int

	// Remaining steps of an in-progress refreshAll chain.
	refreshQueue []refreshStep

	spinner  spinner.Model
	viewport viewport.Model
	ready    bool
	width    int
	height   int
}

// refreshStep identifies the next fetch in a refreshAll chain. Steps are
// materialized into commands only when popped, so they always carry a
// current sequence number.
type refreshStep int

const (
	stepPipeline refreshStep = iota
	stepTwitter
)

// NewModel creates the TUI model. ctx must be cancelled when the program
// exits so in-flight requests are aborted with it.
func NewModel(ctx context.Context, c *client.Client, logger *slog.Logger, cfg config.Config) Model {
	sp := spinner.New(
		spinner.WithSpinner(spinner.Dot),
		spinner.WithStyle(lipgloss.NewStyle().Foreground(lipgloss.Color(colorPrimary))),
	)

	return Model{
		ctx:             ctx,
		client:          c,
		logger:          logger,
		articleLimit:    cfg.ArticleLimit,
		loading:         true,
		posting:         make(map[string]bool),
		awaitingRefetch: make(map[string]bool),
		revealed:        make(map[string]bool),
		articlesSeq:     1,
		pipelineSeq:     1,
		twitterSeq:      1,
		spinner:         sp,
	}
}

// Init implements tea.Model. The three initial fetches run in parallel.
func (m Model) Init() tea.Cmd {
	return tea.Batch(
		m.spinner.Tick,
		loadArticles(m.ctx, m.client, m.articlesSeq, m.articleLimit, m.category),
		loadPipelineStatus(m.ctx, m.client, m.pipelineSeq),
		loadTwitterStatus(m.ctx, m.client, m.twitterSeq),
	)
}

// nextArticlesFetch issues a fresh articles fetch. Any previous error
// banner is cleared on the new attempt.
func (m *Model) nextArticlesFetch() tea.Cmd {
	m.articlesSeq++
	m.errMsg = ""
	return loadArticles(m.ctx, m.client, m.articlesSeq, m.articleLimit, m.category)
}

func (m *Model) nextPipelineFetch() tea.Cmd {
	m.pipelineSeq++
	return loadPipelineStatus(m.ctx, m.client, m.pipelineSeq)
}

func (m *Model) nextTwitterFetch() tea.Cmd {
	m.twitterSeq++
	return loadTwitterStatus(m.ctx, m.client, m.twitterSeq)
}

// advanceRefresh pops the next step of a refreshAll chain, or releases the
// refreshing flag when the chain is exhausted. Called after every applied
// fetch result, regardless of whether that result carried an error, so the
// flag can never be left held by a failing step.
func (m *Model) advanceRefresh() tea.Cmd {
	if !m.refreshing {
		return nil
	}
	if len(m.refreshQueue) == 0 {
		m.refreshing = false
		return nil
	}

	step := m.refreshQueue[0]
	m.refreshQueue = m.refreshQueue[1:]

	switch step {
	case stepTwitter:
		return m.nextTwitterFetch()
	default:
		return m.nextPipelineFetch()
	}
}

// selectedArticle returns the article under the cursor, or nil when the
// snapshot is empty.
func (m Model) selectedArticle() *client.Article {
	if len(m.articles) == 0 || m.cursor < 0 || m.cursor >= len(m.articles) {
		return nil
	}
	return &m.articles[m.cursor]
}

// syncViewport re-renders the article list into the viewport.
func (m *Model) syncViewport() {
	if m.ready {
		m.viewport.SetContent(m.renderArticleList())
	}
}
