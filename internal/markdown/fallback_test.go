package markdown

import (
	"fmt"
	"strings"
	"testing"
)

func renderFallback(t *testing.T, md string) string {
	t.Helper()
	return NewFallbackRenderer().RenderHTML(md)
}

func TestHeadings(t *testing.T) {
	for level := 1; level <= 6; level++ {
		md := strings.Repeat("#", level) + fmt.Sprintf(" Heading %d", level)
		html := renderFallback(t, md)

		open := fmt.Sprintf("<h%d>", level)
		closing := fmt.Sprintf("</h%d>", level)
		if !strings.Contains(html, open) || !strings.Contains(html, closing) {
			t.Errorf("level %d: missing %s...%s in %q", level, open, closing, html)
		}
		if !strings.Contains(html, fmt.Sprintf("Heading %d", level)) {
			t.Errorf("level %d: missing content in %q", level, html)
		}
	}
}

func TestHeadingTrailingHashesStripped(t *testing.T) {
	html := renderFallback(t, "## Heading ##")

	if !strings.Contains(html, "<h2>") || !strings.Contains(html, "Heading") {
		t.Errorf("unexpected output %q", html)
	}
	if strings.Contains(html, "##") {
		t.Errorf("trailing hashes should be stripped: %q", html)
	}
}

func TestHeadingSevenHashesIsNotH7(t *testing.T) {
	html := renderFallback(t, "####### Too deep")

	if strings.Contains(html, "<h7>") {
		t.Errorf("there is no h7: %q", html)
	}
}

func TestMultipleHeadings(t *testing.T) {
	html := renderFallback(t, "# First\n\n## Second\n\n### Third")

	for _, tag := range []string{"<h1>", "<h2>", "<h3>"} {
		if !strings.Contains(html, tag) {
			t.Errorf("missing %s in %q", tag, html)
		}
	}
}

func TestParagraphSingleLine(t *testing.T) {
	html := renderFallback(t, "This is a paragraph.")

	if !strings.Contains(html, "<p>This is a paragraph.</p>") {
		t.Errorf("unexpected output %q", html)
	}
}

func TestParagraphsSeparatedByBlankLine(t *testing.T) {
	html := renderFallback(t, "First paragraph.\n\nSecond paragraph.")

	if strings.Count(html, "<p>") != 2 {
		t.Errorf("expected two paragraphs in %q", html)
	}
}

func TestParagraphJoinsAdjacentLines(t *testing.T) {
	html := renderFallback(t, "line one\nline two")

	if strings.Count(html, "<p>") != 1 {
		t.Errorf("adjacent lines should form one paragraph: %q", html)
	}
}

func TestFencedCodeBackticks(t *testing.T) {
	html := renderFallback(t, "```\ncode here\n```")

	for _, want := range []string{"<pre>", "<code>", "code here", "</code>", "</pre>"} {
		if !strings.Contains(html, want) {
			t.Errorf("missing %q in %q", want, html)
		}
	}
}

func TestFencedCodeWithLanguage(t *testing.T) {
	html := renderFallback(t, "```go\nfunc main() {}\n```")

	if !strings.Contains(html, `class="language-go"`) {
		t.Errorf("missing language class in %q", html)
	}
	if !strings.Contains(html, "func main()") {
		t.Errorf("missing code content in %q", html)
	}
}

func TestFencedCodeTildes(t *testing.T) {
	html := renderFallback(t, "~~~\ncode with tildes\n~~~")

	if !strings.Contains(html, "<pre><code>") || !strings.Contains(html, "code with tildes") {
		t.Errorf("unexpected output %q", html)
	}
}

func TestFencedCodeEscapesHTML(t *testing.T) {
	html := renderFallback(t, "```\n<script>alert('xss')</script>\n```")

	if !strings.Contains(html, "&lt;script&gt;") {
		t.Errorf("script tag not escaped in %q", html)
	}
	if strings.Contains(html, "<script>") {
		t.Errorf("raw script tag leaked into %q", html)
	}
}

func TestFencedCodePreservesIndentation(t *testing.T) {
	html := renderFallback(t, "```\n  indented\n    more\n```")

	if !strings.Contains(html, "  indented") || !strings.Contains(html, "    more") {
		t.Errorf("indentation lost in %q", html)
	}
}

func TestFencedCodeUnclosedStillRenders(t *testing.T) {
	html := renderFallback(t, "```\nno closing fence")

	if !strings.Contains(html, "no closing fence") {
		t.Errorf("unclosed fence content dropped: %q", html)
	}
}

func TestUnorderedListMarkers(t *testing.T) {
	for _, marker := range []string{"-", "*", "+"} {
		md := fmt.Sprintf("%[1]s Item 1\n%[1]s Item 2\n%[1]s Item 3", marker)
		html := renderFallback(t, md)

		if !strings.Contains(html, "<ul>") || !strings.Contains(html, "</ul>") {
			t.Errorf("marker %q: missing list wrapper in %q", marker, html)
		}
		for i := 1; i <= 3; i++ {
			if !strings.Contains(html, fmt.Sprintf("<li>Item %d</li>", i)) {
				t.Errorf("marker %q: missing item %d in %q", marker, i, html)
			}
		}
	}
}

func TestOrderedList(t *testing.T) {
	html := renderFallback(t, "1. First\n2. Second\n3. Third")

	if !strings.Contains(html, "<ol>") || !strings.Contains(html, "</ol>") {
		t.Errorf("missing ordered list wrapper in %q", html)
	}
	if !strings.Contains(html, "<li>First</li>") || !strings.Contains(html, "<li>Third</li>") {
		t.Errorf("missing items in %q", html)
	}
}

func TestOrderedListParenthesisMarker(t *testing.T) {
	html := renderFallback(t, "1) First\n2) Second")

	if !strings.Contains(html, "<ol>") {
		t.Errorf("parenthesis marker not recognized in %q", html)
	}
}

func TestBlockquoteSingleLine(t *testing.T) {
	html := renderFallback(t, "> quoted text")

	if !strings.Contains(html, "<blockquote>") || !strings.Contains(html, "quoted text") {
		t.Errorf("unexpected output %q", html)
	}
}

func TestBlockquoteMultiLine(t *testing.T) {
	html := renderFallback(t, "> line one\n> line two")

	if strings.Count(html, "<blockquote>") != 1 {
		t.Errorf("adjacent quote lines should merge: %q", html)
	}
}

func TestBlockquoteContentIsRenderedRecursively(t *testing.T) {
	html := renderFallback(t, "> # Quoted heading")

	if !strings.Contains(html, "<blockquote>") || !strings.Contains(html, "<h1>") {
		t.Errorf("nested markdown should be rendered: %q", html)
	}
}

func TestHorizontalRules(t *testing.T) {
	for _, md := range []string{"---", "***", "___", "- - -"} {
		html := renderFallback(t, md)
		if !strings.Contains(html, "<hr>") {
			t.Errorf("%q: expected <hr>, got %q", md, html)
		}
	}
}

func TestInlineBold(t *testing.T) {
	for _, md := range []string{"before **bold** after", "before __bold__ after"} {
		html := renderFallback(t, md)
		if !strings.Contains(html, "<strong>bold</strong>") {
			t.Errorf("%q: expected strong span, got %q", md, html)
		}
	}
}

func TestInlineItalic(t *testing.T) {
	for _, md := range []string{"before *italic* after", "before _italic_ after"} {
		html := renderFallback(t, md)
		if !strings.Contains(html, "<em>italic</em>") {
			t.Errorf("%q: expected em span, got %q", md, html)
		}
	}
}

func TestInlineCode(t *testing.T) {
	html := renderFallback(t, "use `fmt.Println` here")

	if !strings.Contains(html, "<code>fmt.Println</code>") {
		t.Errorf("expected code span in %q", html)
	}
}

func TestInlineCodeEscapesHTML(t *testing.T) {
	html := renderFallback(t, "evil `<b>` tag")

	if !strings.Contains(html, "<code>&lt;b&gt;</code>") {
		t.Errorf("code span not escaped in %q", html)
	}
}

func TestInlineTextEscapesHTML(t *testing.T) {
	html := renderFallback(t, "a < b & c > d")

	if !strings.Contains(html, "&lt;") || !strings.Contains(html, "&amp;") || !strings.Contains(html, "&gt;") {
		t.Errorf("plain text not escaped in %q", html)
	}
}

func TestEmptyInput(t *testing.T) {
	if html := renderFallback(t, ""); html != "" {
		t.Errorf("expected empty output, got %q", html)
	}
}

func TestWhitespaceOnlyInput(t *testing.T) {
	if html := renderFallback(t, "   \n\t\n  "); strings.Contains(html, "<p>") {
		t.Errorf("whitespace should not produce a paragraph: %q", html)
	}
}

func TestMixedDocument(t *testing.T) {
	md := `# Title

Intro paragraph with **bold**.

- one
- two

> a quote

` + "```go\ncode()\n```\n\n---\n\nClosing."

	html := renderFallback(t, md)
	for _, want := range []string{
		"<h1>", "<p>", "<strong>bold</strong>", "<ul>", "<li>one</li>",
		"<blockquote>", "<pre><code", "<hr>",
	} {
		if !strings.Contains(html, want) {
			t.Errorf("missing %q in rendered document:\n%s", want, html)
		}
	}
}
