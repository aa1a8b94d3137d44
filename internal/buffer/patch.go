package buffer

import (
	"fmt"
	"time"
)

// Patch records one committed edit: RemovedLen bytes were deleted at
// Start and InsertedText was inserted at that same position. A pure
// insertion has RemovedLen == 0; a pure deletion has empty
// InsertedText. Patches are value objects with no reference back to
// the buffer that produced them.
type Patch struct {
	Start        int       // byte offset where the edit occurred
	RemovedLen   int       // bytes removed (0 for a pure insert)
	InsertedText string    // text inserted (empty for a pure delete)
	Timestamp    time.Time // when the patch was recorded or last extended
}

// IsInsert reports whether the patch is a pure insertion.
func (p Patch) IsInsert() bool {
	return p.RemovedLen == 0 && p.InsertedText != ""
}

// IsDelete reports whether the patch is a pure deletion.
func (p Patch) IsDelete() bool {
	return p.RemovedLen > 0 && p.InsertedText == ""
}

// String returns a human-readable representation of the patch.
func (p Patch) String() string {
	if p.IsDelete() {
		return fmt.Sprintf("Delete(%d, %d)", p.Start, p.RemovedLen)
	}
	if p.IsInsert() {
		return fmt.Sprintf("Insert(%d, %q)", p.Start, p.InsertedText)
	}
	return fmt.Sprintf("Replace(%d, %d, %q)", p.Start, p.RemovedLen, p.InsertedText)
}

// FlushPatches returns the ordered pending patches and clears the
// pending list. The caller takes ownership of the returned slice.
func (g *GapBuffer) FlushPatches() []Patch {
	out := g.pending
	g.pending = nil
	return out
}

// HasPendingPatches reports whether any unflushed patch exists.
func (g *GapBuffer) HasPendingPatches() bool {
	return len(g.pending) > 0
}

// recordPatch appends an edit to the pending list, merging it into the
// most recent pending patch when the two form a contiguous typing or
// backspace run. Only the tail of the list is ever inspected: this is
// a greedy O(1) heuristic, not general patch minimization, and broader
// merging would change patch boundaries downstream consumers see.
func (g *GapBuffer) recordPatch(start, removedLen int, inserted string) {
	if n := len(g.pending); n > 0 {
		last := &g.pending[n-1]

		// Forward typing: an insertion starting exactly where the
		// previous insertion's text ends.
		if removedLen == 0 && last.RemovedLen == 0 &&
			start == last.Start+len(last.InsertedText) {
			last.InsertedText += inserted
			last.Timestamp = time.Now()
			return
		}

		// Backspace run: a deletion ending exactly where the previous
		// deletion started.
		if inserted == "" && last.InsertedText == "" &&
			start+removedLen == last.Start {
			last.Start = start
			last.RemovedLen += removedLen
			last.Timestamp = time.Now()
			return
		}
	}

	g.pending = append(g.pending, Patch{
		Start:        start,
		RemovedLen:   removedLen,
		InsertedText: inserted,
		Timestamp:    time.Now(),
	})
}
