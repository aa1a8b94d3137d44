package markdown

import (
	"bytes"

	"github.com/yuin/goldmark"
)

// GoldmarkRenderer renders markdown through the goldmark CommonMark
// library. This is the full-fidelity engine; FallbackRenderer covers
// the cases where a self-contained renderer is preferred.
type GoldmarkRenderer struct {
	md goldmark.Markdown
}

// NewGoldmarkRenderer creates a goldmark-backed renderer with the
// default CommonMark configuration.
func NewGoldmarkRenderer() *GoldmarkRenderer {
	return &GoldmarkRenderer{md: goldmark.New()}
}

// Name identifies the rendering engine.
func (r *GoldmarkRenderer) Name() string { return EngineGoldmark }

// RenderHTML renders markdown to an HTML fragment. CommonMark has no
// invalid inputs; Convert can only fail on writer errors, which a
// bytes.Buffer never produces.
func (r *GoldmarkRenderer) RenderHTML(markdown string) string {
	var buf bytes.Buffer
	if err := r.md.Convert([]byte(markdown), &buf); err != nil {
		return ""
	}
	return buf.String()
}
