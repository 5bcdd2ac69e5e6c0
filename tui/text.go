package tui

// UI Text Constants
const (
	TextTitle   = "📰 AI News Hub"
	TextLoading = "Loading articles..."

	// Shown in the banner when the primary article fetch fails. Secondary
	// fetch failures are only logged.
	TextArticlesError = "Failed to load articles — is the backend running?"

	TextNoArticles = "No articles yet. Press 'm' to trigger processing or 's' to start the pipeline."

	TextFooterList   = "↑/↓ select | enter detail | o draft | p post | r refresh | s start | x stop | m process | c category | C push config | q quit"
	TextFooterDetail = "esc back | q quit"
)
