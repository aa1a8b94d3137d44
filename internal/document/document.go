package document

import (
	"fmt"
	"os"
	"strings"

	"github.com/google/uuid"

	"github.com/mdedit/mdedit/internal/buffer"
	"github.com/mdedit/mdedit/internal/markdown"
)

// Document is one open markdown document: its text lives in a gap
// buffer, its preview comes from the attached renderer.
type Document struct {
	buf      *buffer.GapBuffer
	renderer markdown.Renderer

	path      string
	lastSaved string
	modified  bool
	revision  string

	// Optional state-change callbacks. All are invoked synchronously
	// from the mutating call; any may be nil.
	OnTextChanged     func()
	OnModifiedChanged func(modified bool)
	OnPathChanged     func(path string)
	OnPreviewReady    func(html string)
}

// Option configures a Document.
type Option func(*Document)

// WithRenderer sets the markdown renderer.
func WithRenderer(r markdown.Renderer) Option {
	return func(d *Document) {
		if r != nil {
			d.renderer = r
		}
	}
}

// New creates an empty document with the default renderer.
func New(opts ...Option) *Document {
	d := &Document{
		buf:      buffer.New(),
		renderer: markdown.Default(),
		revision: uuid.New().String(),
	}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// Text returns the full document content.
func (d *Document) Text() string {
	return d.buf.Text()
}

// SetText replaces the document content. Setting the current text
// again is a no-op and fires no callbacks.
func (d *Document) SetText(text string) {
	if d.buf.Text() == text {
		return
	}

	d.buf.LoadString(text)
	d.touch()
	if d.OnTextChanged != nil {
		d.OnTextChanged()
	}
	d.setModified(text != d.lastSaved)
}

// Insert places text at the given byte offset and marks the document
// modified. Offsets are clamped by the underlying buffer.
func (d *Document) Insert(offset int, text string) {
	if text == "" {
		return
	}
	d.buf.Insert(offset, text)
	d.touch()
	if d.OnTextChanged != nil {
		d.OnTextChanged()
	}
	d.setModified(true)
}

// Erase removes up to n bytes starting at offset and marks the
// document modified. Out-of-range spans are clamped; a no-op erase
// changes nothing.
func (d *Document) Erase(offset, n int) {
	before := d.buf.Len()
	d.buf.Erase(offset, n)
	if d.buf.Len() == before {
		return
	}
	d.touch()
	if d.OnTextChanged != nil {
		d.OnTextChanged()
	}
	d.setModified(true)
}

// LoadFile reads path into the document, replacing its content and
// clearing the modified flag. A "file://" prefix is accepted.
func (d *Document) LoadFile(path string) error {
	local := strings.TrimPrefix(path, "file://")

	data, err := os.ReadFile(local)
	if err != nil {
		return fmt.Errorf("cannot open file: %w", err)
	}

	content := string(data)
	d.buf.LoadString(content)
	d.lastSaved = content
	d.touch()
	d.setPath(local)
	d.setModified(false)
	if d.OnTextChanged != nil {
		d.OnTextChanged()
	}
	return nil
}

// SaveFile writes the document content to path and clears the
// modified flag. A "file://" prefix is accepted.
func (d *Document) SaveFile(path string) error {
	local := strings.TrimPrefix(path, "file://")

	content := d.buf.Text()
	if err := os.WriteFile(local, []byte(content), 0o644); err != nil {
		return fmt.Errorf("cannot save file: %w", err)
	}

	d.lastSaved = content
	d.setPath(local)
	d.setModified(false)
	return nil
}

// RenderHTML renders the document through the attached renderer and
// returns the HTML fragment. OnPreviewReady, if set, receives it too.
func (d *Document) RenderHTML() string {
	html := d.renderer.RenderHTML(d.buf.Text())
	if d.OnPreviewReady != nil {
		d.OnPreviewReady(html)
	}
	return html
}

// Reset empties the document and detaches it from any file.
func (d *Document) Reset() {
	d.buf.Clear()
	d.lastSaved = ""
	d.touch()
	d.setPath("")
	d.setModified(false)
	if d.OnTextChanged != nil {
		d.OnTextChanged()
	}
}

// Path returns the file path, empty for an unsaved document.
func (d *Document) Path() string {
	return d.path
}

// IsModified reports whether the content differs from the last save.
func (d *Document) IsModified() bool {
	return d.modified
}

// Revision returns an opaque ID that changes with every content
// change, usable as a cheap staleness check by consumers.
func (d *Document) Revision() string {
	return d.revision
}

// RendererName identifies the attached markdown engine.
func (d *Document) RendererName() string {
	return d.renderer.Name()
}

// Buffer exposes the underlying gap buffer for direct edits and line
// queries. The document stays the owner; callers must not retain the
// pointer past the document's lifetime.
func (d *Document) Buffer() *buffer.GapBuffer {
	return d.buf
}

// FlushPatches drains the buffer's pending edit patches.
func (d *Document) FlushPatches() []buffer.Patch {
	return d.buf.FlushPatches()
}

// HasPendingPatches reports whether unflushed edit patches exist.
func (d *Document) HasPendingPatches() bool {
	return d.buf.HasPendingPatches()
}

func (d *Document) touch() {
	d.revision = uuid.New().String()
}

func (d *Document) setModified(modified bool) {
	if d.modified == modified {
		return
	}
	d.modified = modified
	if d.OnModifiedChanged != nil {
		d.OnModifiedChanged(modified)
	}
}

func (d *Document) setPath(path string) {
	if d.path == path {
		return
	}
	d.path = path
	if d.OnPathChanged != nil {
		d.OnPathChanged(path)
	}
}
