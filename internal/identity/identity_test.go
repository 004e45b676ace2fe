package identity

import (
	"bytes"
	"strings"
	"testing"

	"github.com/srcfacts/srcxml/internal/lexer"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func roundTrip(t *testing.T, doc string) string {
	t.Helper()
	var out bytes.Buffer
	p := NewPrinter(&out)
	err := lexer.New(strings.NewReader(doc), p).Parse()
	require.NoError(t, err)
	require.NoError(t, p.Flush())
	return out.String()
}

func TestPrinterStartTagWithAttributesNotSplit(t *testing.T) {
	doc := `<?xml version="1.0"?>` + "\n" + `<unit xmlns="http://example.com" a="1"><b/></unit>` + "\n"
	got := roundTrip(t, doc)
	assert.Equal(t, `<?xml version="1.0"?>`+"\n"+`<unit xmlns="http://example.com" a="1"><b></b></unit>`+"\n", got)
}

func TestPrinterEntitiesRoundTripAsReferences(t *testing.T) {
	doc := `<?xml version="1.0"?>` + "\n" + `<unit>a &lt; b &amp; c &gt; d</unit>` + "\n"
	got := roundTrip(t, doc)
	assert.Equal(t, doc, got)
}

func TestPrinterCommentAndCDATA(t *testing.T) {
	doc := `<?xml version="1.0"?>` + "\n" + `<unit><!--note--><![CDATA[raw <data>]]></unit>` + "\n"
	got := roundTrip(t, doc)
	assert.Equal(t, doc, got)
}

func TestPrinterProcessingInstruction(t *testing.T) {
	doc := `<?xml version="1.0"?>` + "\n" + `<?tool do-thing?><unit></unit>` + "\n"
	got := roundTrip(t, doc)
	assert.Equal(t, doc, got)
}
