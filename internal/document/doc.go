// Package document couples a gap buffer with a markdown renderer and
// the file-facing state of one open document: path, last-saved
// content, modified flag, and a revision ID regenerated on every
// content change.
//
// State-change notification uses optional callback fields
// (OnTextChanged, OnModifiedChanged, OnPathChanged, OnPreviewReady)
// rather than any event machinery; callers that do not care leave
// them nil.
//
// A Document is not safe for concurrent use, mirroring the buffer it
// owns. The Watcher is the one concurrent piece: it delivers file
// change notifications from its own goroutine.
package document
