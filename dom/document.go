// Package dom implements runtime.Document over an HTML page.
package dom

import (
	"fmt"
	"io"
	"strings"
	"sync"

	"github.com/PuerkitoBio/goquery"
	"github.com/cockroachdb/errors"
	"golang.org/x/net/html"

	"github.com/germtb/interop"
	errUtils "github.com/germtb/interop/errors"
	"github.com/germtb/interop/runtime"
)

// Observer is notified after the content of a mount target changes.
type Observer func(mountID, text string)

// Document is an HTML page whose elements can serve as mount targets.
// It is safe for concurrent use.
type Document struct {
	mu       sync.RWMutex
	doc      *goquery.Document
	observer Observer
}

var _ runtime.Document = (*Document)(nil)

// Option configures a Document.
type Option func(*Document)

// WithObserver registers fn to be called after every mount change.
func WithObserver(fn Observer) Option {
	return func(d *Document) {
		d.observer = fn
	}
}

// Parse reads an HTML page.
func Parse(r io.Reader, opts ...Option) (*Document, error) {
	doc, err := goquery.NewDocumentFromReader(r)
	if err != nil {
		return nil, errors.Wrap(err, "parse page")
	}
	d := &Document{doc: doc}
	for _, opt := range opts {
		opt(d)
	}
	return d, nil
}

// NewPage creates a page with the given title and one empty div per mount ID.
func NewPage(title string, mountIDs []string, opts ...Option) (*Document, error) {
	var b strings.Builder
	b.WriteString("<!DOCTYPE html><html><head><meta charset=\"utf-8\"><title>")
	b.WriteString(html.EscapeString(title))
	b.WriteString("</title></head><body>")
	for _, id := range mountIDs {
		fmt.Fprintf(&b, "<div id=\"%s\"></div>", html.EscapeString(id))
	}
	b.WriteString("</body></html>")
	return Parse(strings.NewReader(b.String()), opts...)
}

// Lookup implements runtime.Document.
func (d *Document) Lookup(id string) (runtime.Mount, error) {
	d.mu.RLock()
	defer d.mu.RUnlock()
	if d.find(id).Length() == 0 {
		return nil, d.notFound(id)
	}
	return &mount{doc: d, id: id}, nil
}

// HTML renders the whole page.
func (d *Document) HTML() (string, error) {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return goquery.OuterHtml(d.doc.Selection)
}

// InnerHTML renders the content of the mount target id.
func (d *Document) InnerHTML(id string) (string, error) {
	d.mu.RLock()
	defer d.mu.RUnlock()
	sel := d.find(id)
	if sel.Length() == 0 {
		return "", d.notFound(id)
	}
	return sel.Html()
}

// Text returns the text content of the mount target id.
func (d *Document) Text(id string) (string, error) {
	d.mu.RLock()
	defer d.mu.RUnlock()
	sel := d.find(id)
	if sel.Length() == 0 {
		return "", d.notFound(id)
	}
	return sel.Text(), nil
}

// MountIDs lists the IDs of every element in document order.
func (d *Document) MountIDs() []string {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return d.doc.Find("[id]").Map(func(_ int, s *goquery.Selection) string {
		return s.AttrOr("id", "")
	})
}

func (d *Document) find(id string) *goquery.Selection {
	return d.doc.Find("[id]").FilterFunction(func(_ int, s *goquery.Selection) bool {
		return s.AttrOr("id", "") == id
	}).First()
}

func (d *Document) notFound(id string) error {
	err := errors.Wrapf(errUtils.ErrMountNotFound, "no element with id %q", id)
	return errors.WithHint(err, "the page must contain the mount target before anything renders into it")
}

// replace swaps the children of the element id for nodes.
func (d *Document) replace(id string, nodes []*html.Node) error {
	d.mu.Lock()
	sel := d.find(id)
	if sel.Length() == 0 {
		d.mu.Unlock()
		return d.notFound(id)
	}
	sel.Empty()
	if len(nodes) > 0 {
		sel.AppendNodes(nodes...)
	}
	text := sel.Text()
	d.mu.Unlock()

	if d.observer != nil {
		d.observer(id, text)
	}
	return nil
}

type mount struct {
	doc *Document
	id  string
}

func (m *mount) ID() string {
	return m.id
}

func (m *mount) Replace(tree interop.VNode) error {
	nodes, err := ToNodes(tree)
	if err != nil {
		return err
	}
	return m.doc.replace(m.id, nodes)
}

func (m *mount) Clear() error {
	return m.doc.replace(m.id, nil)
}
