package lang

func specPython() *Spec {
	return &Spec{
		Key:               "python",
		Name:              "Python",
		SingleComment:     "#",
		MultiStart:        `"""`,
		MultiEnd:          `"""`,
		StringDelims:      orderDelims([]string{`"`, `'`, `"""`, `'''`}),
		Style:             BlockIndent,
		IndentSignificant: true,
		Patterns: []Pattern{
			pat(Class, `^(\s*class\s+(\w+)\s*[\(:])`),
			pat(Function, `^(\s*(?:async\s+)?def\s+(\w+)\s*\()`),
			pat(Decorator, `^(\s*@(\w[\w.]*)\s*)`),
			pat(Import, `^(\s*(?:from\s+\S+\s+)?import\s+(.+))`),
			pat(Variable, `^(\s*([A-Z][A-Z_0-9]+)\s*=\s*)`),
		},
	}
}
