// Package buffer provides a gap-buffer text store optimized for
// clustered local edits, together with a derived patch stream suitable
// for undo/redo or downstream synchronization.
//
// The storage is a single contiguous byte region split into text
// before the gap, the gap itself (unused capacity), and text after the
// gap. Relocating the gap costs only the distance moved, so edits
// concentrated near one position (typing, backspacing) cost O(edit
// size) amortized regardless of document size.
//
// The package provides:
//
//   - Insert/Erase with silent clamping of out-of-range offsets
//   - Full and ranged text extraction across the gap boundary
//   - On-demand line/offset mapping (no cached line index)
//   - Patch recording with greedy coalescing of typing and backspace runs
//   - Deep-copy duplication (Clone) and ownership transfer (Take)
//
// Basic usage:
//
//	buf := buffer.New()
//	buf.LoadString("Hello, World!")
//	buf.Insert(7, "Beautiful ") // "Hello, Beautiful World!"
//	buf.Erase(0, 7)             // "Beautiful World!"
//	patches := buf.FlushPatches()
//
// Offsets and lengths are raw byte counts, never code points or
// grapheme clusters. Inserting at an arbitrary offset may split a
// multi-byte UTF-8 sequence; keeping offsets on character boundaries
// is the caller's responsibility.
//
// A GapBuffer performs no internal locking and must not be read or
// mutated concurrently from more than one goroutine. Callers that need
// one editable region per view must give each its own instance.
package buffer
