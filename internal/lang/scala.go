package lang

func specScala() *Spec {
	return &Spec{
		Key:           "scala",
		Name:          "Scala",
		SingleComment: "//",
		MultiStart:    "/*",
		MultiEnd:      "*/",
		StringDelims:  orderDelims([]string{`"`, `'`}),
		Style:         BlockBrace,
		Patterns: []Pattern{
			pat(Class, `^(\s*(?:abstract\s+|sealed\s+|case\s+)?class\s+(\w+))`),
			pat(Trait, `^(\s*trait\s+(\w+))`),
			pat(Module, `^(\s*object\s+(\w+))`),
			pat(Function, `^(\s*(?:override\s+)?def\s+(\w+))`),
			pat(Constant, `^(\s*val\s+(\w+))`),
			pat(Variable, `^(\s*var\s+(\w+))`),
			pat(TypeAlias, `^(\s*type\s+(\w+))`),
			pat(Import, `^(\s*import\s+(.+))`),
		},
	}
}
