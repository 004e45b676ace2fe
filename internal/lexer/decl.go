package lexer

import "bytes"

var xmlDeclEndSeq = []byte("?>")

// lexXMLDecl implements spec.md §4.6. Unlike the original C++ source
// (spec.md §9, Open Question 3), optional attributes are located by
// explicitly skipping whitespace before each one and once more before the
// final "?>", rather than assuming tight placement with no intervening
// space.
func (p *Parser) lexXMLDecl() (version, encoding, standalone []byte, err error) {
	buf := p.buf
	data := buf.data
	cursor := buf.cursor + len("<?xml")
	tagEnd := bytes.Index(data[cursor:buf.cursorEnd], xmlDeclEndSeq)
	if tagEnd == -1 {
		return nil, nil, nil, p.incompleteErrorf("incomplete XML declaration")
	}
	tagEnd += cursor

	cursor = skipSpace(data, cursor, tagEnd)
	name, value, ok, e := p.declAttr(data, &cursor, tagEnd)
	if e != nil {
		return nil, nil, nil, e
	}
	if !ok || string(name) != "version" {
		return nil, nil, nil, p.malformedErrorf("missing required first attribute version in XML declaration")
	}
	version = value

	if cursor < tagEnd {
		name, value, ok, e = p.declAttr(data, &cursor, tagEnd)
		if e != nil {
			return nil, nil, nil, e
		}
		if ok {
			switch string(name) {
			case "encoding":
				encoding = value
			case "standalone":
				standalone = value
			default:
				return nil, nil, nil, p.malformedErrorf("invalid attribute %q in XML declaration", name)
			}
		}
	}
	if cursor < tagEnd {
		name, value, ok, e = p.declAttr(data, &cursor, tagEnd)
		if e != nil {
			return nil, nil, nil, e
		}
		if ok {
			if string(name) == "standalone" && standalone == nil {
				standalone = value
			} else {
				return nil, nil, nil, p.malformedErrorf("invalid attribute %q in XML declaration", name)
			}
		}
	}
	buf.cursor = tagEnd + len(xmlDeclEndSeq)
	return version, encoding, standalone, nil
}

// declAttr parses one name="value" pair bounded by tagEnd, advancing
// *cursor past it and any trailing whitespace. ok is false only when
// cursor is already at tagEnd (no attribute present).
func (p *Parser) declAttr(data []byte, cursor *int, tagEnd int) (name, value []byte, ok bool, err error) {
	c := *cursor
	if c >= tagEnd {
		return nil, nil, false, nil
	}
	eq := bytes.IndexByte(data[c:tagEnd], '=')
	if eq == -1 {
		return nil, nil, false, p.malformedErrorf("incomplete attribute in XML declaration")
	}
	eq += c
	name = data[c:eq]
	c = eq + 1
	if c >= tagEnd {
		return nil, nil, false, p.malformedErrorf("invalid delimiter for attribute %q in XML declaration", name)
	}
	delim := data[c]
	if delim != '"' && delim != '\'' {
		return nil, nil, false, p.malformedErrorf("invalid delimiter for attribute %q in XML declaration", name)
	}
	c++
	valEnd := bytes.IndexByte(data[c:tagEnd], delim)
	if valEnd == -1 {
		return nil, nil, false, p.malformedErrorf("incomplete attribute %q in XML declaration", name)
	}
	value = data[c : c+valEnd]
	c += valEnd + 1
	*cursor = skipSpace(data, c, tagEnd)
	return name, value, true, nil
}

// lexProcInst implements spec.md §4.7.
func (p *Parser) lexProcInst() (target, data_ []byte, err error) {
	buf := p.buf
	data := buf.data
	cursor := buf.cursor + 2 // skip "<?"
	tagEnd := bytes.Index(data[cursor:buf.cursorEnd], xmlDeclEndSeq)
	if tagEnd == -1 {
		return nil, nil, p.incompleteErrorf("incomplete processing instruction")
	}
	tagEnd += cursor

	nameEndIdx := nameEnd(data[:tagEnd], cursor)
	if nameEndIdx == cursor {
		return nil, nil, p.malformedErrorf("processing instruction missing target")
	}
	target = data[cursor:nameEndIdx]
	dataStart := skipSpace(data, nameEndIdx, tagEnd)
	data_ = data[dataStart:tagEnd]
	buf.cursor = tagEnd + len(xmlDeclEndSeq)
	return target, data_, nil
}
