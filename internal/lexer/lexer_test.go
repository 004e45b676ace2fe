package lexer

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type event struct {
	kind  string
	qName string
	depth int
}

func collectingHandler(events *[]event) *FuncHandler {
	return &FuncHandler{
		OnStartDocument: func(depth int) {
			*events = append(*events, event{"StartDocument", "", depth})
		},
		OnXMLDeclaration: func(version, encoding, standalone []byte, depth int) {
			*events = append(*events, event{"XMLDeclaration", string(version), depth})
		},
		OnStartTag: func(qName, prefix, localName []byte, depth int) {
			*events = append(*events, event{"StartTag", string(qName), depth})
		},
		OnEndTag: func(qName, prefix, localName []byte, depth int) {
			*events = append(*events, event{"EndTag", string(qName), depth})
		},
		OnAttribute: func(qName, prefix, localName, value []byte, depth int) {
			*events = append(*events, event{"Attribute", string(qName), depth})
		},
		OnNamespace: func(prefix, uri []byte, depth int) {
			*events = append(*events, event{"Namespace", string(prefix), depth})
		},
		OnCharacters: func(text []byte, depth int) {
			*events = append(*events, event{"Characters", string(text), depth})
		},
		OnComment: func(text []byte, depth int) {
			*events = append(*events, event{"Comment", string(text), depth})
		},
		OnCDATA: func(text []byte, depth int) {
			*events = append(*events, event{"CDATA", string(text), depth})
		},
		OnProcessingInstruction: func(target, data []byte, depth int) {
			*events = append(*events, event{"ProcessingInstruction", string(target), depth})
		},
		OnEndDocument: func(depth int) {
			*events = append(*events, event{"EndDocument", "", depth})
		},
	}
}

func TestParseSelfClosingElementEmitsExactlyOneEndTag(t *testing.T) {
	doc := `<?xml version="1.0"?>` + "\n" + `<unit><foo bar="1"/></unit>` + "\n"
	var events []event
	err := New(strings.NewReader(doc), collectingHandler(&events)).Parse()
	require.NoError(t, err)

	var endTags int
	for _, e := range events {
		if e.kind == "EndTag" && e.qName == "foo" {
			endTags++
		}
	}
	assert.Equal(t, 1, endTags)
}

func TestParseSelfClosingElementWithNamespaceEmitsExactlyOneEndTag(t *testing.T) {
	doc := `<?xml version="1.0"?>` + "\n" + `<unit><foo xmlns:a="b"/></unit>` + "\n"
	var events []event
	err := New(strings.NewReader(doc), collectingHandler(&events)).Parse()
	require.NoError(t, err)

	var endTags int
	for _, e := range events {
		if e.kind == "EndTag" && e.qName == "foo" {
			endTags++
		}
	}
	assert.Equal(t, 1, endTags)
}

func TestParseDepthTracksNesting(t *testing.T) {
	doc := `<?xml version="1.0"?>` + "\n" + `<a><b><c/></b></a>` + "\n"
	var events []event
	err := New(strings.NewReader(doc), collectingHandler(&events)).Parse()
	require.NoError(t, err)

	depths := map[string]int{}
	for _, e := range events {
		if e.kind == "StartTag" {
			depths[e.qName] = e.depth
		}
	}
	assert.Equal(t, 0, depths["a"])
	assert.Equal(t, 1, depths["b"])
	assert.Equal(t, 2, depths["c"])
}

func TestParseEmitsStartAndEndDocument(t *testing.T) {
	doc := `<?xml version="1.0"?>` + "\n" + `<unit></unit>` + "\n"
	var events []event
	err := New(strings.NewReader(doc), collectingHandler(&events)).Parse()
	require.NoError(t, err)

	require.NotEmpty(t, events)
	assert.Equal(t, "StartDocument", events[0].kind)
	assert.Equal(t, "EndDocument", events[len(events)-1].kind)
}

func TestParseRefillBoundaryMidStartTag(t *testing.T) {
	doc := `<?xml version="1.0"?>` + "\n" + `<unit></unit>` + "\n"
	var events []event
	// Split the input inside "<unit>" so the start tag spans two refills.
	r := &chunkedReader{chunks: [][]byte{[]byte(doc[:25]), []byte(doc[25:])}}
	err := New(r, collectingHandler(&events), WithBufferSize(minBufferSize)).Parse()
	require.NoError(t, err)
	assert.Equal(t, "EndDocument", events[len(events)-1].kind)
}

func TestParseUnterminatedCommentIsUnterminatedStreamError(t *testing.T) {
	doc := `<?xml version="1.0"?>` + "\n" + `<unit><!--never closed</unit>`
	err := New(strings.NewReader(doc), &FuncHandler{}).Parse()
	require.Error(t, err)
	assert.Equal(t, KindUnterminatedStream, err.(*ParseError).Kind)
}

func TestParseMalformedEndTagIsMalformedError(t *testing.T) {
	doc := `<?xml version="1.0"?>` + "\n" + `<unit></unit extra></unit>` + "\n"
	err := New(strings.NewReader(doc), &FuncHandler{}).Parse()
	require.Error(t, err)
	assert.Equal(t, KindMalformed, err.(*ParseError).Kind)
}

func TestParseCharactersAndEntitiesInterleave(t *testing.T) {
	doc := `<?xml version="1.0"?>` + "\n" + `<unit>a &lt; b</unit>` + "\n"
	var events []event
	err := New(strings.NewReader(doc), collectingHandler(&events)).Parse()
	require.NoError(t, err)

	var text string
	for _, e := range events {
		if e.kind == "Characters" {
			text += e.qName
		}
	}
	assert.Equal(t, "a < b", text)
}
