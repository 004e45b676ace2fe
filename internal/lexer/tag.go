package lexer

// lexStartTag implements spec.md §4.3. It is only invoked by the driver
// after the start-tag terminator '>' has been located in the current
// unconsumed region (see Parser.ensureTerminator).
//
// The start tag's qName is always copied into owned storage before
// returning, even when the tag closes immediately with no attributes,
// because the driver may need it a moment later to synthesize a single
// EndTag event for a self-closing tag — and that owned copy must survive
// across any refill that happens while attributes/namespaces are parsed.
func (p *Parser) lexStartTag() (qName, prefix, local []byte, err error) {
	buf := p.buf
	data := buf.data
	start := buf.cursor + 1 // skip '<'
	if start < buf.cursorEnd && data[start] == ':' {
		return nil, nil, nil, p.malformedErrorf("invalid start tag name: leading ':'")
	}
	end := nameEnd(data[:buf.cursorEnd], start)
	if end == start {
		return nil, nil, nil, p.malformedErrorf("StartTag: invalid element name")
	}
	colon := -1
	if end < buf.cursorEnd && data[end] == ':' {
		colon = end - start
		end = nameEnd(data[:buf.cursorEnd], end+1)
	}
	qName = data[start:end]
	if colon == -1 {
		prefix = data[start:start]
		local = qName
	} else {
		prefix = data[start : start+colon]
		local = data[start+colon+1 : end]
	}
	p.rememberTagName(qName, prefix, local)

	if end < buf.cursorEnd && data[end] != '>' && data[end] != '/' {
		buf.cursor = skipSpace(data, end, buf.cursorEnd)
		p.inTag = true
	} else {
		buf.cursor = end
		p.inTag = false
	}
	return qName, prefix, local, nil
}

// rememberTagName copies qName into owned storage so prefix/local can be
// reconstructed after the originating buffer region has been overwritten
// by a refill. Ownership note from spec.md §9: prefix and local-name views
// must point into that owned copy, not into the buffer.
func (p *Parser) rememberTagName(qName, prefix, local []byte) {
	p.inTagNameBuf = append(p.inTagNameBuf[:0], qName...)
	p.inTagQName = p.inTagNameBuf
	prefixLen := len(prefix)
	p.inTagPrefix = p.inTagNameBuf[:prefixLen]
	if prefixLen > 0 {
		p.inTagLocalName = p.inTagNameBuf[prefixLen+1:]
	} else {
		p.inTagLocalName = p.inTagNameBuf
	}
}

// lexEndTag implements spec.md §4.5.
func (p *Parser) lexEndTag() (qName, prefix, local []byte, err error) {
	buf := p.buf
	data := buf.data
	start := buf.cursor + 2 // skip '</'
	if start < buf.cursorEnd && data[start] == ':' {
		return nil, nil, nil, p.malformedErrorf("invalid end tag name: leading ':'")
	}
	end := nameEnd(data[:buf.cursorEnd], start)
	colon := -1
	if end < buf.cursorEnd && data[end] == ':' {
		colon = end - start
		end = nameEnd(data[:buf.cursorEnd], end+1)
	}
	qName = data[start:end]
	if len(qName) == 0 {
		return nil, nil, nil, p.malformedErrorf("EndTag: invalid element name")
	}
	if colon == -1 {
		prefix = data[start:start]
		local = qName
	} else {
		prefix = data[start : start+colon]
		local = data[start+colon+1 : end]
	}
	if end >= buf.cursorEnd || data[end] != '>' {
		return nil, nil, nil, p.malformedErrorf("EndTag: expected '>' after element name")
	}
	buf.cursor = end + 1
	p.depth--
	return qName, prefix, local, nil
}
