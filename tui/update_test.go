package tui

import (
	"context"
	"errors"
	"io"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"newshub/client"
	"newshub/config"
	"newshub/logging"
)

func newTestModel() Model {
	cfg := config.Config{ArticleLimit: 20, RequestTimeout: time.Second}
	api := client.New("http://localhost:1", cfg.RequestTimeout)
	logger := logging.New(io.Discard, "error")
	return NewModel(context.Background(), api, logger, cfg)
}

func apply(t *testing.T, m Model, msg tea.Msg) (Model, tea.Cmd) {
	t.Helper()
	updated, cmd := m.Update(msg)
	next, ok := updated.(Model)
	if !ok {
		t.Fatalf("Update returned %T, want Model", updated)
	}
	return next, cmd
}

func key(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

func TestArticlesLoadedReplacesSnapshot(t *testing.T) {
	m := newTestModel()
	if !m.loading {
		t.Fatal("model should start in loading state")
	}

	articles := []client.Article{
		{ID: "a1", Title: "First", Posted: true},
		{ID: "a2", Title: "Second"},
	}
	m, _ = apply(t, m, ArticlesLoadedMsg{Seq: m.articlesSeq, Articles: articles})

	if m.loading {
		t.Error("loading flag should clear after first fetch")
	}
	if len(m.articles) != 2 {
		t.Fatalf("expected 2 articles, got %d", len(m.articles))
	}

	stats := ComputeStats(m.articles, time.Now())
	if stats.Total != 2 || stats.Posted != 1 {
		t.Errorf("unexpected stats %+v", stats)
	}
}

func TestStaleArticlesResponseDropped(t *testing.T) {
	m := newTestModel()
	m, _ = apply(t, m, ArticlesLoadedMsg{Seq: m.articlesSeq, Articles: []client.Article{{ID: "a1"}}})

	// A newer fetch is issued (category cycle); the old fetch's late
	// response must not overwrite anything.
	m, cmd := apply(t, m, key('c'))
	if cmd == nil {
		t.Fatal("category cycle should issue a fetch")
	}

	stale := ArticlesLoadedMsg{Seq: m.articlesSeq - 1, Articles: []client.Article{{ID: "old"}}}
	m, _ = apply(t, m, stale)
	if m.articles[0].ID != "a1" {
		t.Error("stale response was applied over the current snapshot")
	}

	fresh := ArticlesLoadedMsg{Seq: m.articlesSeq, Articles: []client.Article{{ID: "new"}}}
	m, _ = apply(t, m, fresh)
	if m.articles[0].ID != "new" {
		t.Error("current response was not applied")
	}
}

func TestArticlesFetchFailureKeepsSnapshot(t *testing.T) {
	m := newTestModel()
	m, _ = apply(t, m, ArticlesLoadedMsg{Seq: m.articlesSeq, Articles: []client.Article{{ID: "a1"}}})

	m, _ = apply(t, m, key('r'))
	m, _ = apply(t, m, ArticlesLoadedMsg{Seq: m.articlesSeq, Err: errors.New("connection refused")})

	if m.errMsg == "" {
		t.Error("error banner should be shown after a failed articles fetch")
	}
	if len(m.articles) != 1 || m.articles[0].ID != "a1" {
		t.Error("previous snapshot should survive a failed fetch")
	}
}

func TestErrorBannerClearedOnNextAttempt(t *testing.T) {
	m := newTestModel()
	m, _ = apply(t, m, ArticlesLoadedMsg{Seq: m.articlesSeq, Err: errors.New("boom")})
	if m.errMsg == "" {
		t.Fatal("banner should be set")
	}

	m, _ = apply(t, m, key('r'))
	if m.errMsg != "" {
		t.Error("banner should clear when a new fetch is issued")
	}
}

func TestRefreshReleasedDespiteFailures(t *testing.T) {
	m := newTestModel()

	m, cmd := apply(t, m, key('r'))
	if !m.refreshing {
		t.Fatal("refreshing flag should be held")
	}
	if cmd == nil {
		t.Fatal("refresh should issue the articles fetch")
	}

	failed := errors.New("timeout")
	m, cmd = apply(t, m, ArticlesLoadedMsg{Seq: m.articlesSeq, Err: failed})
	if cmd == nil {
		t.Fatal("chain should continue to pipeline status after a failed step")
	}
	m, cmd = apply(t, m, PipelineStatusMsg{Seq: m.pipelineSeq, Err: failed})
	if cmd == nil {
		t.Fatal("chain should continue to twitter status after a failed step")
	}
	m, _ = apply(t, m, TwitterStatusMsg{Seq: m.twitterSeq, Err: failed})

	if m.refreshing {
		t.Error("refreshing flag should be released after the chain ends")
	}
}

func TestPostingDisabledUntilRefetch(t *testing.T) {
	m := newTestModel()
	articles := []client.Article{{ID: "a1", Title: "First", AISocial: "draft"}}
	m, _ = apply(t, m, ArticlesLoadedMsg{Seq: m.articlesSeq, Articles: articles})

	m, cmd := apply(t, m, key('p'))
	if cmd == nil {
		t.Fatal("post key should issue the post request")
	}
	if !m.posting["a1"] {
		t.Fatal("posting flag should be held during the request")
	}

	// Pressing p again while in flight is a no-op.
	if _, cmd := apply(t, m, key('p')); cmd != nil {
		t.Error("duplicate post should be ignored while in flight")
	}

	// The POST finished; the flag stays until the re-fetch resolves.
	m, cmd = apply(t, m, ArticlePostedMsg{ArticleID: "a1"})
	if cmd == nil {
		t.Fatal("post completion should trigger re-fetches")
	}
	if !m.posting["a1"] {
		t.Error("posting flag should persist until the article re-fetch lands")
	}

	refreshed := []client.Article{{ID: "a1", Title: "First", AISocial: "draft", Posted: true}}
	m, _ = apply(t, m, ArticlesLoadedMsg{Seq: m.articlesSeq, Articles: refreshed})
	if m.posting["a1"] {
		t.Error("posting flag should clear once the re-fetch resolves")
	}
	if !m.articles[0].Posted {
		t.Error("posted flag should come from the backend snapshot")
	}

	// Posted articles can never be posted again.
	if _, cmd := apply(t, m, key('p')); cmd != nil {
		t.Error("post action should stay disabled once posted is true")
	}
}

func TestStartPipelineNeverFabricatesState(t *testing.T) {
	m := newTestModel()

	m, cmd := apply(t, m, key('s'))
	if cmd == nil {
		t.Fatal("start key should issue the start request")
	}
	if m.pipeline != nil {
		t.Fatal("pipeline snapshot must not change before the status fetch")
	}

	m, cmd = apply(t, m, PipelineToggledMsg{Started: true})
	if cmd == nil {
		t.Fatal("toggle completion should trigger a status re-fetch")
	}
	if m.pipeline != nil {
		t.Error("running flag must come from the backend, not the toggle")
	}

	m, _ = apply(t, m, PipelineStatusMsg{Seq: m.pipelineSeq, Status: &client.PipelineStatus{Running: true}})
	if m.pipeline == nil || !m.pipeline.Running {
		t.Error("status fetch result should be applied")
	}
}

func TestManualProcessHoldsRefreshing(t *testing.T) {
	m := newTestModel()

	m, cmd := apply(t, m, key('m'))
	if cmd == nil {
		t.Fatal("manual key should issue the process request")
	}
	if !m.refreshing {
		t.Fatal("refreshing should be held for the run")
	}

	m, cmd = apply(t, m, ManualProcessDoneMsg{Result: &client.ProcessResult{Processed: 2}})
	if cmd == nil {
		t.Fatal("completion should re-fetch articles")
	}
	if !m.refreshing {
		t.Error("refreshing should stay held through the re-fetches")
	}

	m, cmd = apply(t, m, ArticlesLoadedMsg{Seq: m.articlesSeq})
	if cmd == nil {
		t.Fatal("chain should continue to pipeline status")
	}
	m, _ = apply(t, m, PipelineStatusMsg{Seq: m.pipelineSeq, Status: &client.PipelineStatus{}})
	if m.refreshing {
		t.Error("refreshing should release after the follow-up fetches")
	}
}

func TestManualProcessOverlappingRefresh(t *testing.T) {
	m := newTestModel()

	m, _ = apply(t, m, key('r'))
	m, _ = apply(t, m, key('m'))

	// The refresh chain completes while the manual run is still in
	// flight, releasing the refreshing flag.
	m, _ = apply(t, m, ArticlesLoadedMsg{Seq: m.articlesSeq})
	m, _ = apply(t, m, PipelineStatusMsg{Seq: m.pipelineSeq, Status: &client.PipelineStatus{}})
	m, _ = apply(t, m, TwitterStatusMsg{Seq: m.twitterSeq, Status: &client.TwitterStatus{}})
	if m.refreshing {
		t.Fatal("refresh chain should have released the flag")
	}

	m, cmd := apply(t, m, ManualProcessDoneMsg{Result: &client.ProcessResult{Processed: 1}})
	if cmd == nil {
		t.Fatal("completion should re-fetch articles")
	}
	if !m.refreshing {
		t.Error("refreshing should be held through the manual run's re-fetches")
	}

	m, cmd = apply(t, m, ArticlesLoadedMsg{Seq: m.articlesSeq})
	if cmd == nil {
		t.Fatal("pipeline status re-fetch after manual processing should still run")
	}
	m, _ = apply(t, m, PipelineStatusMsg{Seq: m.pipelineSeq, Status: &client.PipelineStatus{}})
	if m.refreshing {
		t.Error("refreshing should release after the follow-up fetches")
	}
}

func TestSecondaryStatusFailuresAreSilent(t *testing.T) {
	m := newTestModel()

	m, _ = apply(t, m, PipelineStatusMsg{Seq: m.pipelineSeq, Err: errors.New("boom")})
	m, _ = apply(t, m, TwitterStatusMsg{Seq: m.twitterSeq, Err: errors.New("boom")})

	if m.errMsg != "" {
		t.Error("secondary fetch failures must not surface a banner")
	}
	if m.pipeline != nil || m.twitter != nil {
		t.Error("failed fetches must leave snapshots unchanged")
	}
}

func TestCursorClampedToSnapshot(t *testing.T) {
	m := newTestModel()
	m, _ = apply(t, m, ArticlesLoadedMsg{Seq: m.articlesSeq, Articles: []client.Article{
		{ID: "a1"}, {ID: "a2"}, {ID: "a3"},
	}})

	m, _ = apply(t, m, key('j'))
	m, _ = apply(t, m, key('j'))
	if m.cursor != 2 {
		t.Fatalf("cursor = %d, want 2", m.cursor)
	}

	// Snapshot shrinks under the cursor.
	m, _ = apply(t, m, key('r'))
	m, _ = apply(t, m, ArticlesLoadedMsg{Seq: m.articlesSeq, Articles: []client.Article{{ID: "a1"}}})
	if m.cursor != 0 {
		t.Errorf("cursor should clamp to snapshot, got %d", m.cursor)
	}
}

func TestCategoryCycle(t *testing.T) {
	m := newTestModel()

	m, cmd := apply(t, m, key('c'))
	if m.category != "general" {
		t.Errorf("category = %q, want general", m.category)
	}
	if cmd == nil {
		t.Error("category change should re-fetch articles")
	}
}

func TestDetailToggle(t *testing.T) {
	m := newTestModel()
	m, _ = apply(t, m, ArticlesLoadedMsg{Seq: m.articlesSeq, Articles: []client.Article{{ID: "a1"}}})

	m, cmd := apply(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	if cmd == nil {
		t.Fatal("enter should fetch the article detail")
	}

	m, _ = apply(t, m, ArticleDetailMsg{Article: &client.Article{ID: "a1", Content: "full"}})
	if m.detail == nil || m.detail.Content != "full" {
		t.Fatal("detail should be set from the fetch result")
	}

	m, _ = apply(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	if m.detail != nil {
		t.Error("esc should close the detail view")
	}
}
