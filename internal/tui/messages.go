package tui

import (
	"context"

	tea "charm.land/bubbletea/v2"

	"github.com/colonyops/bluebook/internal/core/bluebook"
	"github.com/colonyops/bluebook/internal/core/logging"
)

type documentsLoadedMsg struct {
	docs []bluebook.DocumentEntry
	err  error
}

type indexLoadedMsg struct {
	docs map[string]bluebook.DocumentStructure
	err  error
}

type openedMsg struct {
	url string
	err error
}

func loadDocuments(ctx context.Context, src Source) tea.Cmd {
	return func() tea.Msg {
		docs, err := src.ListDocuments(ctx)
		return documentsLoadedMsg{docs: docs, err: err}
	}
}

func loadIndex(ctx context.Context, src Source) tea.Cmd {
	return func() tea.Msg {
		docs, err := src.FetchIndex(ctx)
		return indexLoadedMsg{docs: docs, err: err}
	}
}

func openURL(ctx context.Context, opener Opener, document, url string) tea.Cmd {
	return func() tea.Msg {
		err := opener.Open(logging.WithDocument(ctx, document), url)
		return openedMsg{url: url, err: err}
	}
}
