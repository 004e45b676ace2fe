package lexer

import "unsafe"

// unsafeString performs a no-copy string conversion from buf, the same
// trick bored-engineer/fastxml's unsafe.go uses for its .XML() conversion
// methods. Safe here because every caller (NameXML/AttrXML) only uses the
// resulting string for the duration of building one xml.Name/xml.Attr from
// a borrowed event slice; it must not be retained past the handler call
// that produced buf.
func unsafeString(buf []byte) string {
	if len(buf) == 0 {
		return ""
	}
	return *(*string)(unsafe.Pointer(&buf))
}
