package lexer

// nameCharMask is the 128-entry name-character table from spec.md §4.9:
// ASCII letters, digits, '.', '-', '_'. The colon is deliberately excluded
// (it's handled as an explicit prefix/local-name separator by the
// production lexers, not folded into the mask) and bytes >= 128 are never
// name characters. This mirrors XMLParser.cpp's tagNameMask bitset.
var nameCharMask [128]bool

func init() {
	for c := 'a'; c <= 'z'; c++ {
		nameCharMask[c] = true
	}
	for c := 'A'; c <= 'Z'; c++ {
		nameCharMask[c] = true
	}
	for c := '0'; c <= '9'; c++ {
		nameCharMask[c] = true
	}
	nameCharMask['.'] = true
	nameCharMask['-'] = true
	nameCharMask['_'] = true
}

// isNameChar reports whether b is an XML name character per the mask.
func isNameChar(b byte) bool {
	return b < 128 && nameCharMask[b]
}

// nameEnd returns the offset of the first byte in buf, starting at start,
// that is not a name character. It returns len(buf) if every remaining
// byte is a name character (the caller must already know more bytes may
// follow, or that buf ends at a safe boundary like '>').
func nameEnd(buf []byte, start int) int {
	i := start
	for i < len(buf) && isNameChar(buf[i]) {
		i++
	}
	return i
}
