package lexer

import "bytes"

// lexAttribute implements spec.md §4.4's attribute production. Both it and
// lexNamespace are only invoked while p.inTag is true, and both share the
// closing behavior described there: a plain '>' increments depth and ends
// the tag; a '/>' ends the tag and asks the driver (via the selfClose
// return value) to emit exactly one synthetic EndTag using the name
// remembered by lexStartTag.
func (p *Parser) lexAttribute() (qName, prefix, local, value []byte, selfClose bool, err error) {
	buf := p.buf
	data := buf.data
	start := buf.cursor
	if data[start] == ':' {
		return nil, nil, nil, nil, false, p.malformedErrorf("invalid attribute name: leading ':'")
	}
	end := nameEnd(data[:buf.cursorEnd], start)
	if end == start {
		return nil, nil, nil, nil, false, p.malformedErrorf("empty attribute name")
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

	cursor := skipSpace(data, end, buf.cursorEnd)
	if cursor >= buf.cursorEnd || data[cursor] != '=' {
		return nil, nil, nil, nil, false, p.malformedErrorf("attribute %q missing '='", qName)
	}
	cursor++
	cursor = skipSpace(data, cursor, buf.cursorEnd)
	if cursor >= buf.cursorEnd {
		return nil, nil, nil, nil, false, p.malformedErrorf("attribute %q missing delimiter", qName)
	}
	delim := data[cursor]
	if delim != '"' && delim != '\'' {
		return nil, nil, nil, nil, false, p.malformedErrorf("attribute %q missing delimiter", qName)
	}
	cursor++
	valueEnd := bytes.IndexByte(data[cursor:buf.cursorEnd], delim)
	if valueEnd == -1 {
		return nil, nil, nil, nil, false, p.malformedErrorf("attribute %q missing closing delimiter", qName)
	}
	value = data[cursor : cursor+valueEnd]
	cursor += valueEnd + 1

	cursor, closedGT, closedSelf := p.closeTag(data, cursor, buf.cursorEnd)
	buf.cursor = cursor
	if closedGT {
		p.depth++
	}
	return qName, prefix, local, value, closedSelf, nil
}

// lexNamespace implements spec.md §4.4's namespace production.
func (p *Parser) lexNamespace() (prefix, uri []byte, selfClose bool, err error) {
	buf := p.buf
	data := buf.data
	cursor := buf.cursor + 5 // skip "xmlns"

	if cursor < buf.cursorEnd && data[cursor] == ':' {
		cursor++
		prefixStart := cursor
		eq := bytes.IndexByte(data[cursor:buf.cursorEnd], '=')
		if eq == -1 {
			return nil, nil, false, p.incompleteErrorf("incomplete namespace declaration")
		}
		prefix = data[prefixStart : prefixStart+eq]
		cursor = prefixStart + eq
	} else {
		prefix = data[cursor:cursor]
	}
	if cursor >= buf.cursorEnd || data[cursor] != '=' {
		return nil, nil, false, p.malformedErrorf("namespace declaration missing '='")
	}
	cursor++
	cursor = skipSpace(data, cursor, buf.cursorEnd)
	if cursor >= buf.cursorEnd {
		return nil, nil, false, p.incompleteErrorf("incomplete namespace declaration")
	}
	delim := data[cursor]
	if delim != '"' && delim != '\'' {
		return nil, nil, false, p.malformedErrorf("namespace declaration missing delimiter")
	}
	cursor++
	valueEnd := bytes.IndexByte(data[cursor:buf.cursorEnd], delim)
	if valueEnd == -1 {
		return nil, nil, false, p.incompleteErrorf("incomplete namespace declaration")
	}
	uri = data[cursor : cursor+valueEnd]
	cursor += valueEnd + 1

	cursor, closedGT, closedSelf := p.closeTag(data, cursor, buf.cursorEnd)
	buf.cursor = cursor
	if closedGT {
		p.depth++
	}
	return prefix, uri, closedSelf, nil
}

// closeTag skips trailing whitespace and recognizes the tag-closing '>' or
// '/>' shared by the attribute and namespace productions. It returns the
// new cursor and which closing form (if any) was seen; when neither is
// seen the tag stays open (in_tag remains true, the loop continues with
// another attribute or namespace).
func (p *Parser) closeTag(data []byte, cursor, end int) (newCursor int, closedGT, closedSelf bool) {
	cursor = skipSpace(data, cursor, end)
	switch {
	case cursor < end && data[cursor] == '>':
		p.inTag = false
		return cursor + 1, true, false
	case cursor+1 < end && data[cursor] == '/' && data[cursor+1] == '>':
		p.inTag = false
		return cursor + 2, false, true
	default:
		return cursor, false, false
	}
}
