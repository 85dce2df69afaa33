package prince

import (
	"context"
	"strings"
)

// Generator is a language model backend.
type Generator interface {
	Generate(ctx context.Context, system, user string, maxTokens int) (string, error)
}

// Direct turns a Generator into a Messenger by building the prompts locally,
// so no proxy is needed.
type Direct struct {
	Generator Generator
	Catalog   Catalog
}

// NewDirect uses the embedded catalog.
func NewDirect(g Generator) *Direct {
	return &Direct{Generator: g, Catalog: DefaultCatalog()}
}

func (d *Direct) Message(ctx context.Context, req Request) (string, error) {
	text, err := d.Generator.Generate(ctx, SystemPrompt(req, d.Catalog), UserMessage(req), MaxTokens)
	if err != nil {
		return "", err
	}
	text = strings.TrimSpace(text)
	if text == "" {
		return "", ErrEmptyMessage
	}
	return text, nil
}
