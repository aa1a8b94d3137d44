package buffer

// Line queries. Lines are delimited by a single line-feed byte and
// numbered from 0. No line-start table is maintained: every query
// rescans the logical content, trading O(n) query cost for zero
// invalidation bookkeeping on edits.

// LineCount returns 0 for an empty buffer, otherwise one more than the
// number of line feeds in the content.
func (g *GapBuffer) LineCount() int {
	if g.IsEmpty() {
		return 0
	}
	lines := 1
	for _, b := range g.buf[:g.gapStart] {
		if b == '\n' {
			lines++
		}
	}
	for _, b := range g.buf[g.gapEnd:] {
		if b == '\n' {
			lines++
		}
	}
	return lines
}

// LineFromOffset returns the 0-based line number containing the given
// byte offset, counting line feeds strictly before it. The offset is
// clamped to [0, Len()].
func (g *GapBuffer) LineFromOffset(offset int) int {
	if offset < 0 {
		offset = 0
	}
	if l := g.Len(); offset > l {
		offset = l
	}

	line := 0
	before := offset
	if before > g.gapStart {
		before = g.gapStart
	}
	for _, b := range g.buf[:before] {
		if b == '\n' {
			line++
		}
	}
	if offset > g.gapStart {
		after := g.gapEnd + (offset - g.gapStart)
		for _, b := range g.buf[g.gapEnd:after] {
			if b == '\n' {
				line++
			}
		}
	}
	return line
}

// OffsetFromLine returns the byte offset of the given (line, column)
// position, both measured in bytes. Requesting a line past the last
// line returns Len(); the added column is clamped to the buffer end.
func (g *GapBuffer) OffsetFromLine(line, column int) int {
	if line <= 0 && column <= 0 {
		return 0
	}
	if line < 0 {
		line = 0
	}
	if column < 0 {
		column = 0
	}

	textLen := g.Len()
	current := 0
	offset := 0
	for _, b := range g.buf[:g.gapStart] {
		if current >= line {
			break
		}
		if b == '\n' {
			current++
		}
		offset++
	}
	if current < line {
		for _, b := range g.buf[g.gapEnd:] {
			if current >= line {
				break
			}
			if b == '\n' {
				current++
			}
			offset++
		}
	}

	if off := offset + column; off < textLen {
		return off
	}
	return textLen
}
