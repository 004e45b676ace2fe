// Package srcfacts implements a lexer.Handler that accumulates the summary
// statistics over a srcML document, grounded on srcFactsParser.cpp/.hpp.
package srcfacts

import "github.com/srcfacts/srcxml/internal/lexer"

// Stats accumulates measures over a single parse. It implements
// lexer.Handler directly, the same shape as srcFactsParser's inheritance
// from XMLParserHandler, translated to Go's satisfy-by-method-set style.
type Stats struct {
	URL              string
	TextSize         int
	LOC              int
	ExprCount        int
	FunctionCount    int
	ClassCount       int
	UnitCount        int
	DeclCount        int
	CommentCount     int
	ReturnCount      int
	LiteralStrCount  int
	LineCommentCount int
	IsArchive        bool

	inTagLiteral bool
	inTagComment bool
}

var _ lexer.Handler = (*Stats)(nil)

func (s *Stats) StartDocument(depth int) {}

func (s *Stats) XMLDeclaration(version, encoding, standalone []byte, depth int) {}

// StartTag mirrors handleElementStartTag's localName dispatch. unit at
// depth 1 (the first child of the document element) marks the input as a
// srcML archive of multiple files rather than a single file.
func (s *Stats) StartTag(qName, prefix, localName []byte, depth int) {
	s.inTagLiteral = false
	s.inTagComment = false
	switch string(localName) {
	case "expr":
		s.ExprCount++
	case "decl":
		s.DeclCount++
	case "comment":
		s.CommentCount++
		s.inTagComment = true
	case "function":
		s.FunctionCount++
	case "unit":
		s.UnitCount++
		if depth == 1 {
			s.IsArchive = true
		}
	case "class":
		s.ClassCount++
	case "return":
		s.ReturnCount++
	case "literal":
		s.inTagLiteral = true
	}
}

func (s *Stats) EndTag(qName, prefix, localName []byte, depth int) {}

// Attribute mirrors handleAttribute: url captures the archived file's path,
// and type="string"/type="line" tag the preceding literal/comment start tag
// when still in scope.
func (s *Stats) Attribute(qName, prefix, localName, value []byte, depth int) {
	if string(localName) == "url" {
		s.URL = string(value)
	}
	switch {
	case s.inTagLiteral:
		if string(localName) == "type" && string(value) == "string" {
			s.LiteralStrCount++
		}
	case s.inTagComment:
		if string(localName) == "type" && string(value) == "line" {
			s.LineCommentCount++
		}
	}
	s.inTagLiteral = false
	s.inTagComment = false
}

func (s *Stats) Namespace(prefix, uri []byte, depth int) {}

// Characters mirrors handleCharacters: a one-byte '<', '>' or '&' event
// counts as a single character and is not scanned for newlines; every other
// run adds its length and its newline count.
func (s *Stats) Characters(text []byte, depth int) {
	if isPseudoEntity(text) {
		s.TextSize++
		return
	}
	for _, b := range text {
		if b == '\n' {
			s.LOC++
		}
	}
	s.TextSize += len(text)
}

func (s *Stats) Comment(text []byte, depth int) {}

// CDATA mirrors handleCDATA: counted toward text size and LOC like
// character data, never entity-decoded.
func (s *Stats) CDATA(text []byte, depth int) {
	s.TextSize += len(text)
	for _, b := range text {
		if b == '\n' {
			s.LOC++
		}
	}
}

func (s *Stats) ProcessingInstruction(target, data []byte, depth int) {}

func (s *Stats) EndDocument(depth int) {}

// isPseudoEntity reports whether text is a single '<', '>' or '&' byte. It
// compares by value, not by identity, so it also matches a literal one-byte
// run such as a lone '>' or the single '&' the lexer emits for an
// unrecognized reference; those count the same way (one byte, no newline),
// so the totals in Characters are unaffected.
func isPseudoEntity(text []byte) bool {
	return len(text) == 1 && (text[0] == '<' || text[0] == '>' || text[0] == '&')
}

// Files reports the number of source files represented, adjusting for the
// archive-wrapper unit when IsArchive is set (mirrors srcFacts.cpp's
// `if (handler.getIsArchive()) --files;`).
func (s *Stats) Files() int {
	files := s.UnitCount
	if s.IsArchive {
		files--
	}
	return files
}
