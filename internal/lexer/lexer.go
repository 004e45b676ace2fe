// Package lexer implements the streaming XML event driver described by
// this module's specification: a buffered, forward-only scanner tuned for
// the srcML dialect that classifies productions from a small lookahead,
// borrows name/value slices from a refillable buffer, and drives a
// pluggable Handler.
package lexer

import (
	"bytes"
	"io"
)

// gtSeq is reused as the preemptive-lookahead terminator for declarations,
// start tags, and end tags (spec.md §4.2's "locate '>'").
var gtSeq = []byte(">")

// Parser is a single-instance, single-threaded event driver over one input
// stream. All lexer state (depth, in_tag, in_xml_comment, in_cdata, the
// remembered start-tag name) is scoped to the Parser; there is no
// process-wide state, per spec.md §9.
type Parser struct {
	r io.Reader
	h Handler

	buf *buffer

	depth int

	inTag          bool
	inTagNameBuf   []byte
	inTagQName     []byte
	inTagPrefix    []byte
	inTagLocalName []byte

	inXMLComment bool
	inCDATA      bool

	totalBytes int64
}

// Option configures a Parser at construction time.
type Option func(*Parser)

// WithBufferSize overrides the buffer capacity C (spec.md §4.1). It must
// be at least large enough to hold the largest indivisible token the input
// can contain; values below a small internal floor are rounded up.
func WithBufferSize(size int) Option {
	return func(p *Parser) {
		p.buf = newBuffer(size)
	}
}

// New creates a Parser reading from r and driving h. Both are retained for
// the duration of Parse.
func New(r io.Reader, h Handler, opts ...Option) *Parser {
	p := &Parser{r: r, h: h}
	for _, opt := range opts {
		opt(p)
	}
	if p.buf == nil {
		p.buf = newBuffer(defaultBufferSize)
	}
	return p
}

// TotalBytes returns the cumulative number of bytes read from the input so
// far.
func (p *Parser) TotalBytes() int64 {
	return p.totalBytes
}

// Parse runs the event driver to completion: it emits StartDocument,
// drives the classify/lex/emit loop until end-of-stream with no open
// continuation, emits EndDocument, and returns. Reaching end-of-stream while
// elements are still open is not reported as an error. A non-nil error means
// the last successfully emitted event is the final event (spec.md §7); the
// driver never recovers from a parse error.
func (p *Parser) Parse() error {
	p.h.StartDocument(p.depth)

	for {
		if p.buf.remaining() < 5 {
			n, err := p.buf.refill(p.r)
			if err != nil {
				return p.refillError(err)
			}
			p.totalBytes += int64(n)
			if p.buf.atTerminal() {
				if p.inXMLComment || p.inCDATA {
					return p.unterminatedStreamErrorf("unexpected end of stream")
				}
				break
			}
			continue
		}

		switch classify(p.buf, p.inTag, p.inXMLComment, p.inCDATA, p.depth) {
		case prodNamespace:
			prefix, uri, selfClose, err := p.lexNamespace()
			if err != nil {
				return err
			}
			p.h.Namespace(prefix, uri, p.depth)
			if selfClose {
				p.emitSyntheticEndTag()
			}

		case prodAttribute:
			qName, prefix, local, value, selfClose, err := p.lexAttribute()
			if err != nil {
				return err
			}
			p.h.Attribute(qName, prefix, local, value, p.depth)
			if selfClose {
				p.emitSyntheticEndTag()
			}

		case prodComment:
			comment, err := p.lexComment()
			if err != nil {
				return err
			}
			p.h.Comment(comment, p.depth)

		case prodCDATA:
			content, err := p.lexCDATA()
			if err != nil {
				return err
			}
			p.h.CDATA(content, p.depth)

		case prodXMLDecl:
			if err := p.ensureTerminator(gtSeq, -1); err != nil {
				return err
			}
			version, encoding, standalone, err := p.lexXMLDecl()
			if err != nil {
				return err
			}
			p.h.XMLDeclaration(version, encoding, standalone, p.depth)

		case prodProcInst:
			if err := p.ensureTerminator(xmlDeclEndSeq, -1); err != nil {
				return err
			}
			target, data, err := p.lexProcInst()
			if err != nil {
				return err
			}
			p.h.ProcessingInstruction(target, data, p.depth)

		case prodEndTag:
			if err := p.ensureTerminator(gtSeq, 100); err != nil {
				return err
			}
			qName, prefix, local, err := p.lexEndTag()
			if err != nil {
				return err
			}
			p.h.EndTag(qName, prefix, local, p.depth)

		case prodStartTag:
			if err := p.ensureTerminator(gtSeq, 200); err != nil {
				return err
			}
			qName, prefix, local, err := p.lexStartTag()
			if err != nil {
				return err
			}
			p.h.StartTag(qName, prefix, local, p.depth)
			if !p.inTag {
				if err := p.closeStartTagFastPath(); err != nil {
					return err
				}
			}

		case prodTopLevelWhitespace:
			p.buf.cursor = skipSpace(p.buf.data, p.buf.cursor, p.buf.cursorEnd)

		case prodCharEntity:
			text := p.lexCharEntity()
			p.h.Characters(text, p.depth)

		default: // prodCharRun
			text := p.lexCharRun()
			p.h.Characters(text, p.depth)
		}
	}

	p.h.EndDocument(p.depth)
	return nil
}

// closeStartTagFastPath handles a start tag that closed immediately after
// its name (no attributes/namespaces followed): either a plain '>' that
// opens the element, or a '/>' that self-closes it. lexStartTag leaves
// in_tag false and the cursor positioned right at this byte in both cases.
func (p *Parser) closeStartTagFastPath() error {
	data := p.buf.data
	cursor := p.buf.cursor
	end := p.buf.cursorEnd
	switch {
	case cursor < end && data[cursor] == '>':
		p.buf.cursor = cursor + 1
		p.depth++
		return nil
	case cursor+1 < end && data[cursor] == '/' && data[cursor+1] == '>':
		p.buf.cursor = cursor + 2
		p.emitSyntheticEndTag()
		return nil
	default:
		return p.malformedErrorf("StartTag: expected '>' or '/>' after element name")
	}
}

// emitSyntheticEndTag emits exactly one EndTag event for a self-closing
// element, using the name lexStartTag remembered in owned storage (spec.md
// §9 resolves the original source's self-close double-event bug this way;
// see DESIGN.md).
func (p *Parser) emitSyntheticEndTag() {
	p.h.EndTag(p.inTagQName, p.inTagPrefix, p.inTagLocalName, p.depth)
}

// ensureTerminator implements spec.md §4.2's preemptive look-ahead: when
// threshold is negative the terminator is always located (XML declaration,
// processing instruction); otherwise it's only checked when fewer than
// threshold bytes remain (start/end tag). If absent, it refills once and
// re-locates; if still absent, it's an IncompleteConstruct error.
func (p *Parser) ensureTerminator(needle []byte, threshold int) error {
	if threshold >= 0 && p.buf.remaining() >= threshold {
		return nil
	}
	if bytes.Contains(p.buf.unread(), needle) {
		return nil
	}
	n, err := p.buf.refill(p.r)
	if err != nil {
		return p.refillError(err)
	}
	p.totalBytes += int64(n)
	if bytes.Contains(p.buf.unread(), needle) {
		return nil
	}
	return p.incompleteErrorf("incomplete construct: expected %q", needle)
}

// refillError classifies a buffer.refill failure: errBufferFull means the
// current token is larger than the buffer can ever hold, which is a
// configuration problem reported as an incomplete construct rather than an
// I/O failure (errors.go documents this mapping).
func (p *Parser) refillError(err error) error {
	if err == errBufferFull {
		return p.incompleteErrorf("%v", err)
	}
	return p.ioError(err)
}
