package markdown

import (
	"bufio"
	"strconv"
	"strings"
)

// FallbackRenderer is a line-oriented markdown renderer with no
// external dependencies. It handles ATX headings, fenced code blocks,
// ordered and unordered lists, blockquotes, horizontal rules,
// paragraphs, and the bold/italic/inline-code inline forms.
type FallbackRenderer struct{}

// NewFallbackRenderer creates a fallback renderer.
func NewFallbackRenderer() *FallbackRenderer {
	return &FallbackRenderer{}
}

// Name identifies the rendering engine.
func (r *FallbackRenderer) Name() string { return EngineFallback }

// RenderHTML renders markdown to an HTML fragment.
func (r *FallbackRenderer) RenderHTML(markdown string) string {
	var b strings.Builder
	b.Grow(len(markdown) * 2)
	for _, blk := range r.parseBlocks(markdown) {
		b.WriteString(r.renderBlock(blk))
	}
	return b.String()
}

type blockKind int

const (
	blockParagraph blockKind = iota
	blockHeading
	blockFencedCode
	blockUnorderedList
	blockOrderedList
	blockBlockquote
	blockHorizontalRule
)

type block struct {
	kind     blockKind
	level    int      // heading level, 1-6
	language string   // fenced code language tag
	content  string   // heading/paragraph/code/blockquote text
	items    []string // list items
}

// parseBlocks walks the input line by line, accumulating multi-line
// constructs (paragraphs, lists, blockquotes, fenced code) until a
// line of a different shape flushes them.
func (r *FallbackRenderer) parseBlocks(markdown string) []block {
	var blocks []block

	var paragraph strings.Builder
	var code strings.Builder
	inFence := false
	var fenceChar byte
	fenceLen := 0
	codeLanguage := ""

	var listItems []string
	inUnordered := false
	inOrdered := false

	var quote strings.Builder
	inQuote := false

	flushParagraph := func() {
		if paragraph.Len() == 0 {
			return
		}
		content := strings.TrimSpace(paragraph.String())
		paragraph.Reset()
		if content != "" {
			blocks = append(blocks, block{kind: blockParagraph, content: content})
		}
	}
	flushList := func() {
		if len(listItems) == 0 {
			return
		}
		kind := blockUnorderedList
		if inOrdered {
			kind = blockOrderedList
		}
		blocks = append(blocks, block{kind: kind, items: listItems})
		listItems = nil
		inUnordered = false
		inOrdered = false
	}
	flushQuote := func() {
		if quote.Len() > 0 {
			blocks = append(blocks, block{kind: blockBlockquote, content: strings.TrimSpace(quote.String())})
			quote.Reset()
		}
		inQuote = false
	}

	scanner := bufio.NewScanner(strings.NewReader(markdown))
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for scanner.Scan() {
		line := scanner.Text()

		if inFence {
			if isFenceEnd(line, fenceChar, fenceLen) {
				blocks = append(blocks, block{kind: blockFencedCode, language: codeLanguage, content: code.String()})
				code.Reset()
				inFence = false
			} else {
				if code.Len() > 0 {
					code.WriteByte('\n')
				}
				code.WriteString(line)
			}
			continue
		}

		if lang, ch, n, ok := parseFenceStart(line); ok {
			flushParagraph()
			flushList()
			flushQuote()
			inFence = true
			fenceChar = ch
			fenceLen = n
			codeLanguage = lang
			code.Reset()
			continue
		}

		if isHorizontalRule(line) {
			flushParagraph()
			flushList()
			flushQuote()
			blocks = append(blocks, block{kind: blockHorizontalRule})
			continue
		}

		if level := headingLevel(line); level > 0 {
			flushParagraph()
			flushList()
			flushQuote()
			blocks = append(blocks, block{kind: blockHeading, level: level, content: headingContent(line)})
			continue
		}

		if content, ok := blockquoteLine(line); ok {
			flushParagraph()
			flushList()
			if quote.Len() > 0 {
				quote.WriteByte('\n')
			}
			quote.WriteString(content)
			inQuote = true
			continue
		} else if inQuote {
			flushQuote()
		}

		if content, ok := unorderedItem(line); ok {
			flushParagraph()
			if inOrdered {
				flushList()
			}
			inUnordered = true
			listItems = append(listItems, content)
			continue
		}

		if content, ok := orderedItem(line); ok {
			flushParagraph()
			if inUnordered {
				flushList()
			}
			inOrdered = true
			listItems = append(listItems, content)
			continue
		}

		if strings.TrimSpace(line) == "" {
			flushParagraph()
			flushList()
			continue
		}

		if paragraph.Len() > 0 {
			paragraph.WriteByte('\n')
		}
		paragraph.WriteString(line)
	}

	if inFence {
		// Unclosed fence at end of input still renders as code.
		blocks = append(blocks, block{kind: blockFencedCode, language: codeLanguage, content: code.String()})
	}
	flushParagraph()
	flushList()
	flushQuote()

	return blocks
}

func (r *FallbackRenderer) renderBlock(blk block) string {
	switch blk.kind {
	case blockHeading:
		return Wrap("h"+strconv.Itoa(blk.level), r.renderInline(blk.content))

	case blockParagraph:
		return Wrap("p", r.renderInline(blk.content))

	case blockFencedCode:
		var b strings.Builder
		b.WriteString("<pre><code")
		if blk.language != "" {
			b.WriteString(` class="language-`)
			b.WriteString(Escape(blk.language))
			b.WriteByte('"')
		}
		b.WriteByte('>')
		b.WriteString(Escape(blk.content))
		b.WriteString("</code></pre>\n")
		return b.String()

	case blockUnorderedList, blockOrderedList:
		tag := "ul"
		if blk.kind == blockOrderedList {
			tag = "ol"
		}
		var b strings.Builder
		b.WriteString("<" + tag + ">\n")
		for _, item := range blk.items {
			b.WriteString("  <li>")
			b.WriteString(r.renderInline(item))
			b.WriteString("</li>\n")
		}
		b.WriteString("</" + tag + ">\n")
		return b.String()

	case blockBlockquote:
		// Blockquote content is a markdown document of its own.
		return "<blockquote>\n" + r.RenderHTML(blk.content) + "</blockquote>\n"

	case blockHorizontalRule:
		return "<hr>\n"
	}
	return ""
}

// renderInline handles inline code, bold, and italic spans, escaping
// everything else.
func (r *FallbackRenderer) renderInline(text string) string {
	var b strings.Builder
	b.Grow(len(text) + len(text)/4)

	i := 0
	for i < len(text) {
		if text[i] == '`' {
			if end := strings.IndexByte(text[i+1:], '`'); end >= 0 {
				b.WriteString("<code>")
				b.WriteString(Escape(text[i+1 : i+1+end]))
				b.WriteString("</code>")
				i += end + 2
				continue
			}
		}

		if strings.HasPrefix(text[i:], "**") {
			if end := strings.Index(text[i+2:], "**"); end >= 0 {
				b.WriteString("<strong>")
				b.WriteString(Escape(text[i+2 : i+2+end]))
				b.WriteString("</strong>")
				i += end + 4
				continue
			}
		}

		if strings.HasPrefix(text[i:], "__") {
			if end := strings.Index(text[i+2:], "__"); end >= 0 {
				b.WriteString("<strong>")
				b.WriteString(Escape(text[i+2 : i+2+end]))
				b.WriteString("</strong>")
				i += end + 4
				continue
			}
		}

		if text[i] == '*' {
			if end := strings.IndexByte(text[i+1:], '*'); end > 0 {
				b.WriteString("<em>")
				b.WriteString(Escape(text[i+1 : i+1+end]))
				b.WriteString("</em>")
				i += end + 2
				continue
			}
		}

		if text[i] == '_' {
			if end := strings.IndexByte(text[i+1:], '_'); end > 0 {
				b.WriteString("<em>")
				b.WriteString(Escape(text[i+1 : i+1+end]))
				b.WriteString("</em>")
				i += end + 2
				continue
			}
		}

		switch text[i] {
		case '&':
			b.WriteString("&amp;")
		case '<':
			b.WriteString("&lt;")
		case '>':
			b.WriteString("&gt;")
		case '"':
			b.WriteString("&quot;")
		default:
			b.WriteByte(text[i])
		}
		i++
	}

	return b.String()
}

// skipIndent consumes up to three leading spaces, the maximum indent
// that does not start an indented code block.
func skipIndent(line string) int {
	i := 0
	for i < len(line) && i < 3 && line[i] == ' ' {
		i++
	}
	return i
}

func isHorizontalRule(line string) bool {
	trimmed := strings.TrimSpace(line)
	if len(trimmed) < 3 {
		return false
	}
	rule := trimmed[0]
	if rule != '-' && rule != '*' && rule != '_' {
		return false
	}
	count := 0
	for i := 0; i < len(trimmed); i++ {
		switch trimmed[i] {
		case rule:
			count++
		case ' ':
		default:
			return false
		}
	}
	return count >= 3
}

// parseFenceStart reports whether line opens a fenced code block and
// returns the language tag, fence character, and fence length.
func parseFenceStart(line string) (lang string, fenceChar byte, fenceLen int, ok bool) {
	i := skipIndent(line)
	if i >= len(line) {
		return "", 0, 0, false
	}
	fenceChar = line[i]
	if fenceChar != '`' && fenceChar != '~' {
		return "", 0, 0, false
	}
	start := i
	for i < len(line) && line[i] == fenceChar {
		i++
	}
	fenceLen = i - start
	if fenceLen < 3 {
		return "", 0, 0, false
	}

	for i < len(line) && (line[i] == ' ' || line[i] == '\t') {
		i++
	}
	langStart := i
	for i < len(line) && line[i] != ' ' && line[i] != '\t' && line[i] != '`' {
		i++
	}
	return line[langStart:i], fenceChar, fenceLen, true
}

func isFenceEnd(line string, fenceChar byte, minLen int) bool {
	i := skipIndent(line)
	if i >= len(line) || line[i] != fenceChar {
		return false
	}
	count := 0
	for i < len(line) && line[i] == fenceChar {
		count++
		i++
	}
	if count < minLen {
		return false
	}
	return strings.TrimSpace(line[i:]) == ""
}

// headingLevel returns the ATX heading level 1-6, or 0 when the line
// is not a heading.
func headingLevel(line string) int {
	i := skipIndent(line)
	level := 0
	for i < len(line) && line[i] == '#' && level < 6 {
		level++
		i++
	}
	if level == 0 {
		return 0
	}
	if i >= len(line) || line[i] == ' ' || line[i] == '\t' {
		return level
	}
	return 0
}

// headingContent strips the leading markers and any trailing closing
// hashes from an ATX heading line.
func headingContent(line string) string {
	i := skipIndent(line)
	for i < len(line) && line[i] == '#' {
		i++
	}
	for i < len(line) && (line[i] == ' ' || line[i] == '\t') {
		i++
	}
	content := line[i:]

	end := len(content)
	for end > 0 && (content[end-1] == ' ' || content[end-1] == '\t') {
		end--
	}
	for end > 0 && content[end-1] == '#' {
		end--
	}
	for end > 0 && (content[end-1] == ' ' || content[end-1] == '\t') {
		end--
	}
	return content[:end]
}

func unorderedItem(line string) (content string, ok bool) {
	i := skipIndent(line)
	if i >= len(line) {
		return "", false
	}
	marker := line[i]
	if marker != '-' && marker != '*' && marker != '+' {
		return "", false
	}
	i++
	if i >= len(line) || (line[i] != ' ' && line[i] != '\t') {
		return "", false
	}
	return strings.TrimSpace(line[i+1:]), true
}

func orderedItem(line string) (content string, ok bool) {
	i := skipIndent(line)
	digits := 0
	for i < len(line) && line[i] >= '0' && line[i] <= '9' {
		digits++
		i++
	}
	if digits == 0 {
		return "", false
	}
	if i >= len(line) || (line[i] != '.' && line[i] != ')') {
		return "", false
	}
	i++
	if i >= len(line) || (line[i] != ' ' && line[i] != '\t') {
		return "", false
	}
	return strings.TrimSpace(line[i+1:]), true
}

func blockquoteLine(line string) (content string, ok bool) {
	i := skipIndent(line)
	if i >= len(line) || line[i] != '>' {
		return "", false
	}
	i++
	if i < len(line) && line[i] == ' ' {
		i++
	}
	return line[i:], true
}
