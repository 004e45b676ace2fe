package lexer

import (
	"bytes"
	"encoding/xml"
)

// DecodeEntities resolves the three pseudo-entities this lexer recognizes
// (&lt; &gt; &amp;) in raw text such as an Attribute event's value, which
// the lexer passes through with entity references intact (Characters events
// already carry decoded entities). It mirrors bored-engineer/fastxml's DecodeEntities,
// adapted to the narrower entity set spec.md §4.10 defines (no numeric
// character references, no &apos;/&quot;).
func DecodeEntities(data []byte) ([]byte, error) {
	if bytes.IndexByte(data, '&') == -1 {
		return data, nil
	}
	out := make([]byte, 0, len(data))
	for {
		idx := bytes.IndexByte(data, '&')
		if idx == -1 {
			out = append(out, data...)
			return out, nil
		}
		out = append(out, data[:idx]...)
		rest := data[idx:]
		switch {
		case bytes.HasPrefix(rest, []byte("&lt;")):
			out = append(out, '<')
			data = rest[4:]
		case bytes.HasPrefix(rest, []byte("&gt;")):
			out = append(out, '>')
			data = rest[4:]
		case bytes.HasPrefix(rest, []byte("&amp;")):
			out = append(out, '&')
			data = rest[5:]
		default:
			return nil, &ParseError{Kind: KindMalformed, Msg: "unrecognized character entity"}
		}
	}
}

// NameXML builds an xml.Name from a prefix/local pair as produced by
// StartTag, EndTag, or Attribute events. Space carries the short prefix
// used in the document, not a resolved namespace URI, matching
// bored-engineer/fastxml's Name.XML.
func NameXML(prefix, local []byte) xml.Name {
	return xml.Name{Space: unsafeString(prefix), Local: unsafeString(local)}
}

// AttrXML converts one Attribute event's fields to an xml.Attr, decoding
// entities in the value first.
func AttrXML(prefix, local, value []byte) (xml.Attr, error) {
	decoded, err := DecodeEntities(value)
	if err != nil {
		return xml.Attr{}, err
	}
	return xml.Attr{Name: NameXML(prefix, local), Value: unsafeString(decoded)}, nil
}

// StartElementXML builds an xml.StartElement from a StartTag event's name
// and the Attribute events accumulated before its matching close, mirroring
// bored-engineer/fastxml's StartElement.XML.
func StartElementXML(prefix, local []byte, attrs []xml.Attr) xml.StartElement {
	return xml.StartElement{Name: NameXML(prefix, local), Attr: attrs}
}

// EndElementXML builds an xml.EndElement from an EndTag event's name.
func EndElementXML(prefix, local []byte) xml.EndElement {
	return xml.EndElement{Name: NameXML(prefix, local)}
}
