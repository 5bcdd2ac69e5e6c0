package tui

import (
	"fmt"
	"strings"
	"time"

	"newshub/client"
)

// chromeHeight is the number of terminal rows taken by the title, status
// summary, banner slot and footer around the article list viewport.
const chromeHeight = 9

const timeLayout = "Jan 2 15:04"

// View implements tea.Model.
func (m Model) View() string {
	if !m.ready {
		return "\n  " + InfoStyle.Render(TextLoading)
	}

	var b strings.Builder

	b.WriteString(TitleStyle.Render(TextTitle))
	b.WriteString("\n")
	b.WriteString(m.renderStatusSummary())
	b.WriteString("\n")

	if m.errMsg != "" {
		b.WriteString(BannerStyle.Render(m.errMsg))
	}
	b.WriteString("\n")

	switch {
	case m.loading:
		b.WriteString(m.spinner.View())
		b.WriteString(InfoStyle.Render(TextLoading))
	case m.detail != nil:
		b.WriteString(m.renderDetail())
	case len(m.articles) == 0:
		b.WriteString(InfoStyle.Render(TextNoArticles))
	default:
		b.WriteString(m.viewport.View())
	}

	b.WriteString("\n\n")
	if m.detail != nil {
		b.WriteString(InfoStyle.Render(TextFooterDetail))
	} else {
		b.WriteString(InfoStyle.Render(TextFooterList))
	}

	return b.String()
}

// renderStatusSummary aggregates the article snapshot and shows the two
// backend status indicators.
func (m Model) renderStatusSummary() string {
	stats := ComputeStats(m.articles, time.Now())

	counts := fmt.Sprintf("📊 %d articles | %d posted | %d categories | %d today",
		stats.Total, stats.Posted, stats.Categories, stats.Today)

	line := InfoStyle.Render(counts)
	line += "   " + m.renderPipelineIndicator()
	line += "   " + m.renderTwitterIndicator()

	if m.category != "" {
		line += "   " + BadgeStyle.Render("filter: "+m.category)
	}
	if m.refreshing {
		line += "   " + m.spinner.View() + InfoStyle.Render("refreshing")
	}

	return line
}

func (m Model) renderPipelineIndicator() string {
	if m.pipeline == nil {
		return InfoStyle.Render("◌ pipeline unknown")
	}
	if m.pipeline.Running {
		return StatusStyle.Render("● pipeline running")
	}
	return WarningStyle.Render("○ pipeline stopped")
}

func (m Model) renderTwitterIndicator() string {
	if m.twitter == nil {
		return InfoStyle.Render("◌ twitter unknown")
	}
	switch {
	case m.twitter.Connected:
		return StatusStyle.Render("● twitter connected")
	case m.twitter.Configured:
		return WarningStyle.Render("○ twitter configured")
	default:
		return InfoStyle.Render("○ twitter not configured")
	}
}

// renderArticleList renders every article in the snapshot. The result is
// set as viewport content so long lists scroll.
func (m Model) renderArticleList() string {
	var b strings.Builder

	for i, a := range m.articles {
		b.WriteString(m.renderArticle(a, i == m.cursor))
		b.WriteString("\n")
	}

	return b.String()
}

func (m Model) renderArticle(a client.Article, selected bool) string {
	var b strings.Builder

	marker := "  "
	titleStyle := ArticleTitleStyle
	if selected {
		marker = SelectedStyle.Render("▸ ")
		titleStyle = SelectedStyle
	}

	b.WriteString(marker)
	b.WriteString(titleStyle.Render(a.Title))
	b.WriteString("\n")

	times := fmt.Sprintf("published %s | processed %s",
		a.PublishedAt.Local().Format(timeLayout),
		a.ProcessedAt.Local().Format(timeLayout))
	b.WriteString("  ")
	b.WriteString(InfoStyle.Render(a.Source))
	b.WriteString("  ")
	b.WriteString(BadgeStyle.Render(a.Category))
	b.WriteString("  ")
	b.WriteString(InfoStyle.Render(times))
	b.WriteString("\n")

	b.WriteString(InfoStyle.Render("  🔗 " + a.URL))
	b.WriteString("\n")

	if a.ImageURL != "" {
		b.WriteString(InfoStyle.Render("  🖼  " + a.ImageURL))
		b.WriteString("\n")
	}

	if a.AISummary != "" {
		b.WriteString("  " + a.AISummary)
		b.WriteString("\n")
	}

	if a.AISocial != "" {
		b.WriteString(m.renderSocialAction(a))
	}

	return b.String()
}

// renderSocialAction renders the toggleable social draft reveal and the
// post action's current state.
func (m Model) renderSocialAction(a client.Article) string {
	var b strings.Builder

	if m.revealed[a.ID] {
		b.WriteString(BoxStyle.Render(a.AISocial))
		b.WriteString("\n")
	}

	switch {
	case a.Posted:
		b.WriteString("  " + StatusStyle.Render("✔ posted"))
	case m.posting[a.ID]:
		b.WriteString("  " + m.spinner.View() + InfoStyle.Render("posting..."))
	case m.revealed[a.ID]:
		b.WriteString("  " + HighlightStyle.Render("p to post"))
	default:
		b.WriteString("  " + InfoStyle.Render("o to reveal draft"))
	}
	b.WriteString("\n")

	return b.String()
}

// renderDetail shows one article with its full content.
func (m Model) renderDetail() string {
	a := m.detail

	var b strings.Builder
	b.WriteString(ArticleTitleStyle.Render(a.Title))
	b.WriteString("\n\n")
	b.WriteString(fmt.Sprintf("%s  %s\n", InfoStyle.Render(a.Source), BadgeStyle.Render(a.Category)))
	b.WriteString(InfoStyle.Render(fmt.Sprintf("published %s | processed %s",
		a.PublishedAt.Local().Format(timeLayout),
		a.ProcessedAt.Local().Format(timeLayout))))
	b.WriteString("\n")
	b.WriteString(InfoStyle.Render("🔗 " + a.URL))
	b.WriteString("\n\n")

	switch {
	case a.Content != "":
		b.WriteString(a.Content)
	case a.Description != "":
		b.WriteString(a.Description)
	}

	if a.AISummary != "" {
		b.WriteString("\n\n")
		b.WriteString(HighlightStyle.Render("AI Summary"))
		b.WriteString("\n")
		b.WriteString(a.AISummary)
	}

	return BoxStyle.Render(b.String())
}
