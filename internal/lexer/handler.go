package lexer

// Handler is the capability set the driver requires of its consumer
// (spec.md §6). Every byte slice argument borrows from the parser's
// internal buffer and is valid only for the duration of the call; a
// handler that needs to retain a value must copy it before returning.
//
// encoding and standalone on XMLDeclaration are nil when absent from the
// declaration and non-nil (possibly empty) when present, mirroring the
// std::optional<std::string_view> fields in XMLParserHandler.hpp.
type Handler interface {
	StartDocument(depth int)
	XMLDeclaration(version, encoding, standalone []byte, depth int)
	StartTag(qName, prefix, localName []byte, depth int)
	EndTag(qName, prefix, localName []byte, depth int)
	Attribute(qName, prefix, localName, value []byte, depth int)
	Namespace(prefix, uri []byte, depth int)
	Characters(text []byte, depth int)
	Comment(text []byte, depth int)
	CDATA(text []byte, depth int)
	ProcessingInstruction(target, data []byte, depth int)
	EndDocument(depth int)
}

// FuncHandler adapts a set of per-event callbacks to the Handler
// interface. A nil field is silently ignored when its event fires,
// matching spec.md §6's "Unregistered callbacks ... are silently ignored."
// The two binding styles (a polymorphic Handler, or FuncHandler's
// per-callback registration) are interchangeable: both feed the same
// driver loop.
type FuncHandler struct {
	OnStartDocument         func(depth int)
	OnXMLDeclaration        func(version, encoding, standalone []byte, depth int)
	OnStartTag              func(qName, prefix, localName []byte, depth int)
	OnEndTag                func(qName, prefix, localName []byte, depth int)
	OnAttribute             func(qName, prefix, localName, value []byte, depth int)
	OnNamespace             func(prefix, uri []byte, depth int)
	OnCharacters            func(text []byte, depth int)
	OnComment               func(text []byte, depth int)
	OnCDATA                 func(text []byte, depth int)
	OnProcessingInstruction func(target, data []byte, depth int)
	OnEndDocument           func(depth int)
}

var _ Handler = (*FuncHandler)(nil)

func (f *FuncHandler) StartDocument(depth int) {
	if f.OnStartDocument != nil {
		f.OnStartDocument(depth)
	}
}

func (f *FuncHandler) XMLDeclaration(version, encoding, standalone []byte, depth int) {
	if f.OnXMLDeclaration != nil {
		f.OnXMLDeclaration(version, encoding, standalone, depth)
	}
}

func (f *FuncHandler) StartTag(qName, prefix, localName []byte, depth int) {
	if f.OnStartTag != nil {
		f.OnStartTag(qName, prefix, localName, depth)
	}
}

func (f *FuncHandler) EndTag(qName, prefix, localName []byte, depth int) {
	if f.OnEndTag != nil {
		f.OnEndTag(qName, prefix, localName, depth)
	}
}

func (f *FuncHandler) Attribute(qName, prefix, localName, value []byte, depth int) {
	if f.OnAttribute != nil {
		f.OnAttribute(qName, prefix, localName, value, depth)
	}
}

func (f *FuncHandler) Namespace(prefix, uri []byte, depth int) {
	if f.OnNamespace != nil {
		f.OnNamespace(prefix, uri, depth)
	}
}

func (f *FuncHandler) Characters(text []byte, depth int) {
	if f.OnCharacters != nil {
		f.OnCharacters(text, depth)
	}
}

func (f *FuncHandler) Comment(text []byte, depth int) {
	if f.OnComment != nil {
		f.OnComment(text, depth)
	}
}

func (f *FuncHandler) CDATA(text []byte, depth int) {
	if f.OnCDATA != nil {
		f.OnCDATA(text, depth)
	}
}

func (f *FuncHandler) ProcessingInstruction(target, data []byte, depth int) {
	if f.OnProcessingInstruction != nil {
		f.OnProcessingInstruction(target, data, depth)
	}
}

func (f *FuncHandler) EndDocument(depth int) {
	if f.OnEndDocument != nil {
		f.OnEndDocument(depth)
	}
}
