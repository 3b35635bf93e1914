package lang

func specHaskell() *Spec {
	return &Spec{
		Key:               "haskell",
		Name:              "Haskell",
		SingleComment:     "--",
		MultiStart:        "{-",
		MultiEnd:          "-}",
		StringDelims:      orderDelims([]string{`"`, `'`}),
		Style:             BlockIndent,
		IndentSignificant: true,
		Patterns: []Pattern{
			pat(Module, `^(\s*module\s+(\w[\w.]*))`),
			pat(TypeAlias, `^(\s*type\s+(\w+))`),
			pat(Struct, `^(\s*data\s+(\w+))`),
			pat(Class, `^(\s*class\s+(\w+))`),
			pat(Function, `^(([a-z_]\w*)\s*::)`),
			pat(Import, `^(\s*import\s+(?:qualified\s+)?(.+))`),
		},
	}
}
