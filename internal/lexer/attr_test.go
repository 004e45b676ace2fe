package lexer

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLexAttribute(t *testing.T) {
	testCases := []struct {
		Name            string
		Input           string
		ExpectedQName   string
		ExpectedPrefix  string
		ExpectedLocal   string
		ExpectedValue   string
		ExpectedDepth   int
		ExpectedSelf    bool
		ExpectedInTag   bool
	}{
		{"plain closes tag", `foo="bar">`, "foo", "", "foo", "bar", 1, false, false},
		{"prefixed stays open for more", `ns:foo="bar" more`, "ns:foo", "ns", "foo", "bar", 0, false, true},
		{"self closes tag", `foo="bar"/>`, "foo", "", "foo", "bar", 0, true, false},
		{"single quoted value", `foo='bar'>`, "foo", "", "foo", "bar", 1, false, false},
	}
	for _, tc := range testCases {
		t.Run(tc.Name, func(t *testing.T) {
			p := newTestParser(tc.Input)
			p.inTag = true
			qName, prefix, local, value, selfClose, err := p.lexAttribute()
			require.NoError(t, err)
			assert.Equal(t, tc.ExpectedQName, string(qName))
			assert.Equal(t, tc.ExpectedPrefix, string(prefix))
			assert.Equal(t, tc.ExpectedLocal, string(local))
			assert.Equal(t, tc.ExpectedValue, string(value))
			assert.Equal(t, tc.ExpectedDepth, p.depth)
			assert.Equal(t, tc.ExpectedSelf, selfClose)
			assert.Equal(t, tc.ExpectedInTag, p.inTag)
		})
	}
}

func TestLexAttributeMissingEqualsIsMalformed(t *testing.T) {
	p := newTestParser(`foo "bar">`)
	p.inTag = true
	_, _, _, _, _, err := p.lexAttribute()
	require.Error(t, err)
	assert.Equal(t, KindMalformed, err.(*ParseError).Kind)
}

func TestLexNamespace(t *testing.T) {
	testCases := []struct {
		Name           string
		Input          string
		ExpectedPrefix string
		ExpectedURI    string
		ExpectedDepth  int
		ExpectedSelf   bool
	}{
		{"default namespace", `xmlns="http://example.com">`, "", "http://example.com", 1, false},
		{"prefixed namespace", `xmlns:ns="http://example.com">`, "ns", "http://example.com", 1, false},
		{"self closing", `xmlns="http://example.com"/>`, "", "http://example.com", 0, true},
	}
	for _, tc := range testCases {
		t.Run(tc.Name, func(t *testing.T) {
			p := newTestParser(tc.Input)
			p.inTag = true
			prefix, uri, selfClose, err := p.lexNamespace()
			require.NoError(t, err)
			assert.Equal(t, tc.ExpectedPrefix, string(prefix))
			assert.Equal(t, tc.ExpectedURI, string(uri))
			assert.Equal(t, tc.ExpectedDepth, p.depth)
			assert.Equal(t, tc.ExpectedSelf, selfClose)
		})
	}
}
