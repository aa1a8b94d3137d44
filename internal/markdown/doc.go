// Package markdown converts markdown text to HTML fragments.
//
// Two renderers are available behind the Renderer interface:
//
//   - GoldmarkRenderer wraps the goldmark CommonMark library and is
//     the default.
//   - FallbackRenderer is a self-contained line-oriented renderer
//     covering the common block and inline constructs (headings,
//     fenced code, lists, blockquotes, rules, bold/italic/inline
//     code). It exists so rendering works without the external
//     CommonMark engine and trades spec completeness for simplicity.
//
// Renderers are stateless; a single instance may be reused across
// documents.
package markdown
