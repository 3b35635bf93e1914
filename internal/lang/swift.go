package lang

func specSwift() *Spec {
	return &Spec{
		Key:           "swift",
		Name:          "Swift",
		SingleComment: "//",
		MultiStart:    "/*",
		MultiEnd:      "*/",
		StringDelims:  orderDelims([]string{`"`, `'`}),
		Style:         BlockBrace,
		Patterns: []Pattern{
			pat(Class, `^(\s*(?:public\s+|private\s+|internal\s+|open\s+|fileprivate\s+)?`+
				`(?:final\s+)?class\s+(\w+))`),
			pat(Struct, `^(\s*(?:public\s+|private\s+|internal\s+)?struct\s+(\w+))`),
			pat(Enum, `^(\s*(?:public\s+|private\s+|internal\s+)?enum\s+(\w+))`),
			pat(Protocol, `^(\s*(?:public\s+|private\s+|internal\s+)?protocol\s+(\w+))`),
			pat(Extension, `^(\s*(?:public\s+|private\s+|internal\s+)?extension\s+(\w+))`),
			pat(Function, `^(\s*(?:public\s+|private\s+|internal\s+|open\s+)?(?:static\s+|class\s+)?`+
				`(?:override\s+)?func\s+(\w+))`),
			pat(Import, `^(\s*import\s+(\w+))`),
			pat(Constant, `^(\s*(?:public\s+|private\s+)?(?:static\s+)?let\s+(\w+)\s*(?::|\s*=))`),
			pat(Variable, `^(\s*(?:public\s+|private\s+)?(?:static\s+)?var\s+(\w+)\s*(?::|\s*=))`),
		},
	}
}
