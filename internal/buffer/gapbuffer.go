package buffer

import "fmt"

const (
	// DefaultCapacity is the initial backing size for an empty buffer,
	// sized to absorb typical small edits without reallocation.
	DefaultCapacity = 4096

	// MinGapSize is the smallest gap reserved when loading content or
	// growing the storage.
	MinGapSize = 256
)

// GapBuffer stores editable text as one contiguous byte region with a
// movable gap of unused capacity. Layout, left to right:
//
//	[0, gapStart)       text before the gap
//	[gapStart, gapEnd)  the gap (contents undefined)
//	[gapEnd, len(buf))  text after the gap
//
// The invariant 0 <= gapStart <= gapEnd <= len(buf) holds at all
// times; a violation is a programming defect and panics.
type GapBuffer struct {
	buf      []byte
	gapStart int
	gapEnd   int
	pending  []Patch
}

// New creates an empty buffer with the default capacity.
func New() *GapBuffer {
	return NewWithCapacity(DefaultCapacity)
}

// NewWithCapacity creates an empty buffer with the given initial
// capacity in bytes.
func NewWithCapacity(capacity int) *GapBuffer {
	if capacity < 0 {
		capacity = 0
	}
	return &GapBuffer{
		buf:    make([]byte, capacity),
		gapEnd: capacity,
	}
}

// LoadString replaces the buffer content with text and discards all
// pending patches. A reload is not an edit: no patch is recorded.
func (g *GapBuffer) LoadString(text string) {
	g.pending = nil

	newCap := len(text) + MinGapSize
	if newCap < DefaultCapacity {
		newCap = DefaultCapacity
	}
	g.buf = make([]byte, newCap)
	copy(g.buf, text)
	g.gapStart = len(text)
	g.gapEnd = newCap
	g.checkInvariant()
}

// Clear empties the buffer without shrinking its capacity and discards
// all pending patches.
func (g *GapBuffer) Clear() {
	g.gapStart = 0
	g.gapEnd = len(g.buf)
	g.pending = nil
}

// Len returns the logical text length in bytes, excluding the gap.
func (g *GapBuffer) Len() int {
	return len(g.buf) - (g.gapEnd - g.gapStart)
}

// IsEmpty reports whether the buffer holds no text.
func (g *GapBuffer) IsEmpty() bool {
	return g.Len() == 0
}

// Text returns the full logical content.
func (g *GapBuffer) Text() string {
	out := make([]byte, 0, g.Len())
	out = append(out, g.buf[:g.gapStart]...)
	out = append(out, g.buf[g.gapEnd:]...)
	return string(out)
}

// TextRange returns up to n bytes of logical content starting at
// offset start. The second argument is a length, not an end offset.
// Out-of-range values are clamped; a start at or past the end of the
// text returns the empty string. Spans that straddle the gap are
// stitched from both sides.
func (g *GapBuffer) TextRange(start, n int) string {
	textLen := g.Len()
	if start < 0 {
		start = 0
	}
	if start >= textLen || n <= 0 {
		return ""
	}
	if n > textLen-start {
		n = textLen - start
	}

	out := make([]byte, 0, n)
	if start < g.gapStart {
		end := start + n
		if end > g.gapStart {
			end = g.gapStart
		}
		out = append(out, g.buf[start:end]...)
		if rest := start + n - g.gapStart; rest > 0 {
			out = append(out, g.buf[g.gapEnd:g.gapEnd+rest]...)
		}
	} else {
		from := g.gapEnd + (start - g.gapStart)
		out = append(out, g.buf[from:from+n]...)
	}
	return string(out)
}

// Insert places text at the given byte offset. The offset is silently
// clamped to [0, Len()]: a stale cursor position computed by a
// presentation layer can never fail the call. The edit is recorded as
// a pending patch, merging into the previous one when it continues a
// forward typing run.
func (g *GapBuffer) Insert(offset int, text string) {
	if text == "" {
		return
	}
	if offset < 0 {
		offset = 0
	}
	if l := g.Len(); offset > l {
		offset = l
	}

	g.ensureGapCapacity(len(text))
	g.moveGapTo(offset)
	copy(g.buf[g.gapStart:], text)
	g.gapStart += len(text)
	g.checkInvariant()

	g.recordPatch(offset, 0, text)
}

// Erase removes up to n bytes starting at offset. Out-of-range values
// are clamped and erasing past the end is a no-op. The edit is
// recorded as a pending patch, merging into the previous one when it
// continues a backspace run.
func (g *GapBuffer) Erase(offset, n int) {
	textLen := g.Len()
	if offset < 0 {
		offset = 0
	}
	if offset >= textLen || n <= 0 {
		return
	}
	if n > textLen-offset {
		n = textLen - offset
	}

	g.moveGapTo(offset)
	g.gapEnd += n
	g.checkInvariant()

	g.recordPatch(offset, n, "")
}

// Clone returns a deep copy. The duplicate owns its own storage and
// its own pending-patch list; no mutable state is shared with the
// receiver.
func (g *GapBuffer) Clone() *GapBuffer {
	dup := &GapBuffer{
		buf:      append([]byte(nil), g.buf...),
		gapStart: g.gapStart,
		gapEnd:   g.gapEnd,
	}
	if g.pending != nil {
		dup.pending = append([]Patch(nil), g.pending...)
	}
	return dup
}

// Take transfers the buffer's storage and pending patches to a new
// buffer and leaves the receiver empty but valid.
func (g *GapBuffer) Take() *GapBuffer {
	moved := &GapBuffer{
		buf:      g.buf,
		gapStart: g.gapStart,
		gapEnd:   g.gapEnd,
		pending:  g.pending,
	}
	g.buf = make([]byte, DefaultCapacity)
	g.gapStart = 0
	g.gapEnd = DefaultCapacity
	g.pending = nil
	return moved
}

// moveGapTo relocates the gap so that gapStart lands on position,
// shifting only the bytes between the gap's old position and the
// target. Cost is O(distance moved), not O(buffer size); this is what
// makes clustered edits cheap.
func (g *GapBuffer) moveGapTo(position int) {
	if position == g.gapStart {
		return
	}
	gapSize := g.gapEnd - g.gapStart
	if position < g.gapStart {
		shift := g.gapStart - position
		copy(g.buf[g.gapEnd-shift:g.gapEnd], g.buf[position:g.gapStart])
	} else {
		shift := position - g.gapStart
		copy(g.buf[g.gapStart:], g.buf[g.gapEnd:g.gapEnd+shift])
	}
	g.gapStart = position
	g.gapEnd = position + gapSize
	g.checkInvariant()
}

// ensureGapCapacity grows the backing storage until the gap can hold
// required bytes. Growth at least doubles the capacity so repeated
// small insertions amortize.
func (g *GapBuffer) ensureGapCapacity(required int) {
	if g.gapEnd-g.gapStart >= required {
		return
	}
	newCap := len(g.buf) * 2
	if needed := g.Len() + required + MinGapSize; newCap < needed {
		newCap = needed
	}
	g.grow(newCap)
}

// grow reallocates storage at the new capacity. Bytes before the gap
// keep their offsets, bytes after the gap stay anchored to the end of
// the storage, and the gap widens to fill the middle.
func (g *GapBuffer) grow(minCapacity int) {
	if minCapacity < len(g.buf) {
		panic(fmt.Sprintf("buffer: grow to %d below current capacity %d", minCapacity, len(g.buf)))
	}
	newBuf := make([]byte, minCapacity)
	copy(newBuf, g.buf[:g.gapStart])
	suffix := len(g.buf) - g.gapEnd
	copy(newBuf[minCapacity-suffix:], g.buf[g.gapEnd:])
	g.buf = newBuf
	g.gapEnd = minCapacity - suffix
	g.checkInvariant()
}

// checkInvariant aborts on corrupted gap bounds. A violation is a
// programming defect, never a recoverable runtime state.
func (g *GapBuffer) checkInvariant() {
	if g.gapStart < 0 || g.gapStart > g.gapEnd || g.gapEnd > len(g.buf) {
		panic(fmt.Sprintf("buffer: gap bounds corrupted: gapStart=%d gapEnd=%d cap=%d",
			g.gapStart, g.gapEnd, len(g.buf)))
	}
}
