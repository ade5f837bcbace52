package render

import (
	"fmt"
	"html/template"
	"io"
	"sync"
)

// Kind identifies what an Element shows.
type Kind string

const (
	KindModal     Kind = "modal"
	KindMedal     Kind = "medal"
	KindGallery   Kind = "gallery"
	KindContainer Kind = "container"
)

// Element is a rendered, self-contained HTML fragment.
type Element struct {
	Kind Kind
	// ID is the id of the rendered item. Galleries and containers have none.
	ID   string
	HTML template.HTML
}

// Target is where rendered elements are mounted.
type Target interface {
	Mount(el Element) error
}

// TargetFunc adapts a function to Target.
type TargetFunc func(el Element) error

func (f TargetFunc) Mount(el Element) error {
	return f(el)
}

// Body collects mounted elements in memory. It is safe for concurrent use.
type Body struct {
	mu       sync.Mutex
	elements []Element
}

func NewBody() *Body {
	return &Body{}
}

func (b *Body) Mount(el Element) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.elements = append(b.elements, el)
	return nil
}

// Elements returns a copy of the mounted elements, oldest first.
func (b *Body) Elements() []Element {
	b.mu.Lock()
	defer b.mu.Unlock()

	out := make([]Element, len(b.elements))
	copy(out, b.elements)
	return out
}

// Close removes the first mounted element with the given kind and id,
// like clicking its close button. It reports whether one was removed.
func (b *Body) Close(kind Kind, id string) bool {
	b.mu.Lock()
	defer b.mu.Unlock()

	for i, el := range b.elements {
		if el.Kind == kind && el.ID == id {
			b.elements = append(b.elements[:i], b.elements[i+1:]...)
			return true
		}
	}
	return false
}

// WriterTarget writes each mounted element to w, one per line.
type WriterTarget struct {
	mu sync.Mutex
	w  io.Writer
}

func NewWriterTarget(w io.Writer) *WriterTarget {
	return &WriterTarget{w: w}
}

func (t *WriterTarget) Mount(el Element) error {
	t.mu.Lock()
	defer t.mu.Unlock()

	_, err := fmt.Fprintln(t.w, el.HTML)
	return err
}
