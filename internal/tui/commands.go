package tui

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/jadiha/little-prince/internal/prince"
	"github.com/jadiha/little-prince/internal/util"
)

// princeMsg delivers a flavor-text reply. FoxAnswer is set when the reply
// answers a weekly reflection that still has to be stored.
type princeMsg struct {
	Context   prince.Context
	Reply     prince.Reply
	FoxAnswer *string
}

// reportMsg reports the outcome of writing a PDF sky report.
type reportMsg struct {
	Path string
	Err  error
}

// speakCmd asks the prince off the update loop. The request is built from a
// snapshot before the command runs, so the goroutine never touches the store.
func speakCmd(ctx context.Context, svc *prince.Service, req prince.Request) tea.Cmd {
	return func() tea.Msg {
		return princeMsg{Context: req.Context, Reply: svc.Speak(ctx, req)}
	}
}

func foxCmd(ctx context.Context, svc *prince.Service, req prince.Request, answer string) tea.Cmd {
	return func() tea.Msg {
		return princeMsg{Context: req.Context, Reply: svc.Speak(ctx, req), FoxAnswer: util.Ptr(answer)}
	}
}
