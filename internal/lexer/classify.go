package lexer

import "bytes"

// production identifies which production the classifier selected for the
// next lexer invocation; see spec.md §4.2's predicate table.
type production int

const (
	prodNamespace production = iota
	prodAttribute
	prodComment
	prodCDATA
	prodXMLDecl
	prodProcInst
	prodEndTag
	prodStartTag
	prodTopLevelWhitespace
	prodCharEntity
	prodCharRun
)

var (
	xmlnsPrefix  = []byte("xmlns")
	commentOpen  = []byte("<!--")
	cdataOpen    = []byte("<![CDATA[")
	xmlDeclOpen  = []byte("<?xml ")
	procInstOpen = []byte("<?")
	endTagOpen   = []byte("</")
)

// classify picks exactly one production using the first matching predicate
// in the order spec.md §4.2 specifies. The order is semantically
// significant: in_tag shadows every non-namespace-non-attribute predicate,
// and depth == 0 whitespace skipping only applies once every tag-oriented
// and markup-oriented check above it has failed.
func classify(buf *buffer, inTag, inXMLComment, inCDATA bool, depth int) production {
	data := buf.unread()

	if inTag {
		if hasNamespacePrefix(data) {
			return prodNamespace
		}
		return prodAttribute
	}
	if inXMLComment || bytes.HasPrefix(data, commentOpen) {
		return prodComment
	}
	if inCDATA || bytes.HasPrefix(data, cdataOpen) {
		return prodCDATA
	}
	if bytes.HasPrefix(data, xmlDeclOpen) {
		return prodXMLDecl
	}
	if bytes.HasPrefix(data, procInstOpen) {
		return prodProcInst
	}
	if bytes.HasPrefix(data, endTagOpen) {
		return prodEndTag
	}
	if len(data) > 0 && data[0] == '<' {
		return prodStartTag
	}
	if depth == 0 {
		return prodTopLevelWhitespace
	}
	if len(data) > 0 && data[0] == '&' {
		return prodCharEntity
	}
	return prodCharRun
}

// hasNamespacePrefix reports whether data starts with "xmlns" immediately
// followed by ':' or '='.
func hasNamespacePrefix(data []byte) bool {
	if len(data) < 6 || !bytes.HasPrefix(data, xmlnsPrefix) {
		return false
	}
	return data[5] == ':' || data[5] == '='
}
