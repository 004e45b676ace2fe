// Package identity implements a lexer.Handler that re-serializes a srcML
// document back to XML, byte for byte equivalent modulo whitespace lost to
// attribute quoting, grounded on identity.cpp's registered-callback
// identity transform.
package identity

import (
	"bufio"
	"io"

	"github.com/srcfacts/srcxml/internal/lexer"
)

// Printer writes an XML serialization of the events it receives to an
// underlying writer. Like identity.cpp, it defers closing a start tag with
// '>' until it knows whether another attribute/namespace follows or the
// tag is about to be interrupted by a different kind of event, so
// `<a attr="v">` is written without a spurious split.
type Printer struct {
	w              *bufio.Writer
	pendingTagOpen bool
	writeErr       error
}

var _ lexer.Handler = (*Printer)(nil)

// NewPrinter wraps w for buffered output. Callers should call Flush after
// Parse returns to guarantee the last bytes reach w.
func NewPrinter(w io.Writer) *Printer {
	return &Printer{w: bufio.NewWriter(w)}
}

// Flush flushes any buffered output and returns the first write error
// encountered, if any.
func (p *Printer) Flush() error {
	if err := p.w.Flush(); err != nil && p.writeErr == nil {
		p.writeErr = err
	}
	return p.writeErr
}

func (p *Printer) closeOpenTag() {
	if p.pendingTagOpen {
		p.pendingTagOpen = false
		p.write(">")
	}
}

func (p *Printer) write(s string) {
	if p.writeErr != nil {
		return
	}
	if _, err := p.w.WriteString(s); err != nil {
		p.writeErr = err
	}
}

func (p *Printer) writeBytes(b []byte) {
	if p.writeErr != nil {
		return
	}
	if _, err := p.w.Write(b); err != nil {
		p.writeErr = err
	}
}

func (p *Printer) StartDocument(depth int) {}

func (p *Printer) XMLDeclaration(version, encoding, standalone []byte, depth int) {
	p.closeOpenTag()
	p.write(`<?xml version="`)
	p.writeBytes(version)
	p.write(`"`)
	if encoding != nil {
		p.write(` encoding="`)
		p.writeBytes(encoding)
		p.write(`"`)
	}
	if standalone != nil {
		p.write(` standalone="`)
		p.writeBytes(standalone)
		p.write(`"`)
	}
	p.write("?>\n")
}

func (p *Printer) StartTag(qName, prefix, localName []byte, depth int) {
	p.closeOpenTag()
	p.write("<")
	p.writeBytes(qName)
	p.pendingTagOpen = true
}

func (p *Printer) EndTag(qName, prefix, localName []byte, depth int) {
	p.closeOpenTag()
	p.write("</")
	p.writeBytes(qName)
	p.write(">")
}

func (p *Printer) Attribute(qName, prefix, localName, value []byte, depth int) {
	p.write(" ")
	p.writeBytes(qName)
	p.write(`="`)
	p.writeBytes(value)
	p.write(`"`)
}

func (p *Printer) Namespace(prefix, uri []byte, depth int) {
	p.write(" xmlns")
	if len(prefix) > 0 {
		p.write(":")
		p.writeBytes(prefix)
	}
	p.write(`="`)
	p.writeBytes(uri)
	p.write(`"`)
}

// Characters writes the pseudo-entity it's handed back out as a literal
// entity reference, and passes every other character run through verbatim.
func (p *Printer) Characters(text []byte, depth int) {
	p.closeOpenTag()
	switch {
	case len(text) == 1 && text[0] == '<':
		p.write("&lt;")
	case len(text) == 1 && text[0] == '>':
		p.write("&gt;")
	case len(text) == 1 && text[0] == '&':
		p.write("&amp;")
	default:
		p.writeBytes(text)
	}
}

func (p *Printer) Comment(text []byte, depth int) {
	p.closeOpenTag()
	p.write("<!--")
	p.writeBytes(text)
	p.write("-->")
}

func (p *Printer) CDATA(text []byte, depth int) {
	p.closeOpenTag()
	p.write("<![CDATA[")
	p.writeBytes(text)
	p.write("]]>")
}

func (p *Printer) ProcessingInstruction(target, data []byte, depth int) {
	p.closeOpenTag()
	p.write("<?")
	p.writeBytes(target)
	p.write(" ")
	p.writeBytes(data)
	p.write("?>")
}

func (p *Printer) EndDocument(depth int) {
	p.write("\n")
}
