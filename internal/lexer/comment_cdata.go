package lexer

import "bytes"

var (
	commentCloseSeq = []byte("-->")
	cdataCloseSeq   = []byte("]]>")
)

// lexComment implements spec.md §4.8 for XML comments. On first entry (not
// a continuation) it skips the "<!--" opener; on a continuation entry the
// opener must NOT be re-consumed. If the closer is found in the current
// unconsumed region, the continuation flag clears and the body runs up to
// (not including) the closer. If not, the body is everything up to
// cursorEnd, the continuation flag is set, and the caller's next iteration
// refills and calls back in with the flag still set.
func (p *Parser) lexComment() (comment []byte, err error) {
	buf := p.buf
	data := buf.data
	start := buf.cursor
	if !p.inXMLComment {
		start += 4 // skip "<!--"
	}
	idx := bytes.Index(data[start:buf.cursorEnd], commentCloseSeq)
	if idx == -1 {
		comment = data[start:buf.cursorEnd]
		buf.cursor = buf.cursorEnd
		p.inXMLComment = true
		return comment, nil
	}
	comment = data[start : start+idx]
	buf.cursor = start + idx + len(commentCloseSeq)
	p.inXMLComment = false
	return comment, nil
}

// lexCDATA implements spec.md §4.8 for CDATA sections. Same continuation
// shape as lexComment; the closer is advanced past exactly once (spec.md
// §9 flags the original C++ source's redundant double-advance as a bug to
// not repeat).
func (p *Parser) lexCDATA() (data_ []byte, err error) {
	buf := p.buf
	data := buf.data
	start := buf.cursor
	if !p.inCDATA {
		start += 9 // skip "<![CDATA["
	}
	idx := bytes.Index(data[start:buf.cursorEnd], cdataCloseSeq)
	if idx == -1 {
		data_ = data[start:buf.cursorEnd]
		buf.cursor = buf.cursorEnd
		p.inCDATA = true
		return data_, nil
	}
	data_ = data[start : start+idx]
	buf.cursor = start + idx + len(cdataCloseSeq)
	p.inCDATA = false
	return data_, nil
}
