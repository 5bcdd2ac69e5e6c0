package tui

import "newshub/client"

// Messages for the tea program. Every fetch result carries the sequence
// number captured when the request was issued; Update drops results whose
// sequence is no longer the latest for their kind, so an overlapping fetch
// can never apply a stale snapshot over a newer one.

// ArticlesLoadedMsg is sent when an articles fetch completes.
type ArticlesLoadedMsg struct {
	Seq      int
	Articles []client.Article
	Err      error
}

// PipelineStatusMsg is sent when a pipeline status fetch completes.
type PipelineStatusMsg struct {
	Seq    int
	Status *client.PipelineStatus
	Err    error
}

// TwitterStatusMsg is sent when a twitter status fetch completes.
type TwitterStatusMsg struct {
	Seq    int
	Status *client.TwitterStatus
	Err    error
}

// PipelineToggledMsg is sent when a start or stop request completes. The
// true pipeline state is only known after the follow-up status fetch.
type PipelineToggledMsg struct {
	Started bool
	Err     error
}

// ManualProcessDoneMsg is sent when a manual processing run completes.
type ManualProcessDoneMsg struct {
	Result *client.ProcessResult
	Err    error
}

// ArticlePostedMsg is sent when a post-to-twitter request completes.
type ArticlePostedMsg struct {
	ArticleID string
	Err       error
}

// ArticleDetailMsg is sent when a single-article fetch completes.
type ArticleDetailMsg struct {
	Article *client.Article
	Err     error
}

// ConfigPushedMsg is sent when a backend config update completes.
type ConfigPushedMsg struct {
	Category string
	Err      error
}
