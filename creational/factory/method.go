package factory

import (
	"fmt"
	"strings"
)

// Document is the input to the exporter products.
type Document struct {
	Title string
	Body  string
}

// Exporter is the product of the factory method: it turns a Document into a
// serialized form.
type Exporter interface {
	// ContentType returns the MIME type of the exported form.
	ContentType() string

	// Export serializes the document.
	Export(doc Document) string
}

// MarkdownExporter renders documents as Markdown.
type MarkdownExporter struct{}

func (MarkdownExporter) ContentType() string { return "text/markdown" }

func (MarkdownExporter) Export(doc Document) string {
	return fmt.Sprintf("# %s\n\n%s\n", doc.Title, doc.Body)
}

// HTMLExporter renders documents as a minimal HTML fragment.
type HTMLExporter struct{}

func (HTMLExporter) ContentType() string { return "text/html" }

func (HTMLExporter) Export(doc Document) string {
	return fmt.Sprintf("<h1>%s</h1>\n<p>%s</p>\n", doc.Title, doc.Body)
}

// PlainExporter renders documents as underlined plain text.
type PlainExporter struct{}

func (PlainExporter) ContentType() string { return "text/plain" }

func (PlainExporter) Export(doc Document) string {
	return fmt.Sprintf("%s\n%s\n\n%s\n", doc.Title, strings.Repeat("=", len(doc.Title)), doc.Body)
}

// NewExporter is the factory method type. The classic pattern puts the
// method on an abstract creator subclassed per product; in Go the deferred
// construction step is simply a function value.
type NewExporter func() Exporter

// Publisher is the creator: it implements the publishing workflow once and
// defers the choice of exporter to the factory method it was built with.
type Publisher struct {
	newExporter NewExporter
}

// NewPublisher creates a publisher using the given factory method.
func NewPublisher(newExporter NewExporter) *Publisher {
	return &Publisher{newExporter: newExporter}
}

// Publish runs the workflow: construct the exporter via the factory method,
// export the document, and frame it with its content type. The workflow is
// identical for every exporter; only the factory method varies.
func (p *Publisher) Publish(doc Document) string {
	exp := p.newExporter()
	return fmt.Sprintf("-- %s --\n%s", exp.ContentType(), exp.Export(doc))
}
