package markdown

import (
	"errors"
	"fmt"
)

// Renderer converts a markdown document to an HTML fragment.
type Renderer interface {
	// RenderHTML renders the given markdown source. The result is an
	// HTML fragment without a surrounding page.
	RenderHTML(markdown string) string

	// Name identifies the rendering engine.
	Name() string
}

// Renderer names accepted by NewRenderer.
const (
	EngineGoldmark = "goldmark"
	EngineFallback = "fallback"
)

// ErrUnknownRenderer is returned for renderer names NewRenderer does
// not recognize.
var ErrUnknownRenderer = errors.New("unknown renderer")

// NewRenderer returns the renderer registered under name. The empty
// name selects the default engine.
func NewRenderer(name string) (Renderer, error) {
	switch name {
	case "", EngineGoldmark:
		return NewGoldmarkRenderer(), nil
	case EngineFallback:
		return NewFallbackRenderer(), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownRenderer, name)
	}
}

// Default returns the renderer used when nothing is configured.
func Default() Renderer {
	return NewGoldmarkRenderer()
}
