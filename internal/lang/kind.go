package lang

// Kind identifies the syntactic category of a recognized element.
type Kind int

const (
	Function Kind = iota
	Method
	Class
	Struct
	Enum
	Trait
	Interface
	Module
	Impl
	Macro
	Constant
	Variable
	TypeAlias
	Import
	Decorator
	CommentSingle
	CommentMulti
	Component
	Protocol
	Extension
	Union
	Namespace
	Property
	Signal
	Typedef
)

var kindLabels = map[Kind]string{
	Function:      "FUNCTION",
	Method:        "METHOD",
	Class:         "CLASS",
	Struct:        "STRUCT",
	Enum:          "ENUM",
	Trait:         "TRAIT",
	Interface:     "INTERFACE",
	Module:        "MODULE",
	Impl:          "IMPL",
	Macro:         "MACRO",
	Constant:      "CONSTANT",
	Variable:      "VARIABLE",
	TypeAlias:     "TYPE_ALIAS",
	Import:        "IMPORT",
	Decorator:     "DECORATOR",
	CommentSingle: "COMMENT",
	CommentMulti:  "COMMENT",
	Component:     "COMPONENT",
	Protocol:      "PROTOCOL",
	Extension:     "EXTENSION",
	Union:         "UNION",
	Namespace:     "NAMESPACE",
	Property:      "PROPERTY",
	Signal:        "SIGNAL",
	Typedef:       "TYPEDEF",
}

var kindShort = map[Kind]string{
	Function:  "fn",
	Method:    "method",
	Class:     "class",
	Struct:    "struct",
	Enum:      "enum",
	Trait:     "trait",
	Interface: "iface",
	Module:    "mod",
	Impl:      "impl",
	Macro:     "macro",
	Constant:  "const",
	Variable:  "var",
	TypeAlias: "type",
	Component: "comp",
	Property:  "prop",
	Decorator: "dec",
	Typedef:   "typedef",
	Extension: "ext",
	Protocol:  "proto",
	Namespace: "ns",
	Signal:    "signal",
}

// Label returns the stable uppercase tag used in structured listings.
// Both comment kinds share the COMMENT label.
func (k Kind) Label() string {
	if l, ok := kindLabels[k]; ok {
		return l
	}
	return "UNKNOWN"
}

// Short returns the compact kind token used in markdown output.
func (k Kind) Short() string {
	if s, ok := kindShort[k]; ok {
		return s
	}
	return "unk"
}

// IsComment reports whether the kind is one of the two comment kinds.
func (k Kind) IsComment() bool {
	return k == CommentSingle || k == CommentMulti
}

// singleLineKinds never trigger a block-extent search: the construct is
// complete on its declaration line.
var singleLineKinds = map[Kind]bool{
	Import:    true,
	Constant:  true,
	Variable:  true,
	Decorator: true,
	Macro:     true,
	TypeAlias: true,
	Typedef:   true,
	Property:  true,
}

// SingleLine reports whether elements of this kind span exactly one line.
func (k Kind) SingleLine() bool {
	return singleLineKinds[k]
}

// containerKinds can own depth-1 members.
var containerKinds = map[Kind]bool{
	Class:     true,
	Struct:    true,
	Module:    true,
	Impl:      true,
	Interface: true,
	Trait:     true,
	Namespace: true,
	Enum:      true,
	Extension: true,
	Protocol:  true,
}

// Container reports whether elements of this kind may own nested members.
func (k Kind) Container() bool {
	return containerKinds[k]
}

// ParseKind maps an uppercase label back to a Kind. The COMMENT label is
// ambiguous and intentionally not parseable; used by the construct finder
// which only deals in definition kinds.
func ParseKind(label string) (Kind, bool) {
	for k, l := range kindLabels {
		if l == label && !k.IsComment() {
			return k, true
		}
	}
	return 0, false
}
