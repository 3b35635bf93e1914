package lang

func specGo() *Spec {
	return &Spec{
		Key:           "go",
		Name:          "Go",
		SingleComment: "//",
		MultiStart:    "/*",
		MultiEnd:      "*/",
		StringDelims:  orderDelims([]string{`"`, "`"}),
		Style:         BlockBrace,
		Patterns: []Pattern{
			// Method before Function would shadow it: plain functions
			// match first, receivers are recognized by the method form.
			pat(Function, `^(\s*func\s+(\w+)\s*\()`),
			pat(Method, `^(\s*func\s+\(\s*\w+\s+\*?\w+\s*\)\s+(\w+)\s*\()`),
			pat(Struct, `^(\s*type\s+(\w+)\s+struct\b)`),
			pat(Interface, `^(\s*type\s+(\w+)\s+interface\b)`),
			// Struct and interface declarations are matched above, so a
			// plain word after the name is an alias or named type.
			pat(TypeAlias, `^(\s*type\s+(\w+)\s+\w)`),
			pat(Constant, `^(\s*(?:const|var)\s+(\w+))`),
			pat(Import, `^(\s*import\s+(.+))`),
			pat(Module, `^(\s*package\s+(\w+))`),
		},
	}
}
