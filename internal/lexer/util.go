package lexer

// isASCIISpace matches the C locale's isspace() for the single-byte
// classification the original parser relies on: space, tab, newline,
// vertical tab, form feed, carriage return.
func isASCIISpace(b byte) bool {
	switch b {
	case ' ', '\t', '\n', '\v', '\f', '\r':
		return true
	default:
		return false
	}
}

// skipSpace returns the offset of the first non-whitespace byte in
// data[start:end], or end if every byte in the range is whitespace.
func skipSpace(data []byte, start, end int) int {
	i := start
	for i < end && isASCIISpace(data[i]) {
		i++
	}
	return i
}
