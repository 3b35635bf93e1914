package lang

func specKotlin() *Spec {
	return &Spec{
		Key:           "kotlin",
		Name:          "Kotlin",
		SingleComment: "//",
		MultiStart:    "/*",
		MultiEnd:      "*/",
		StringDelims:  orderDelims([]string{`"`, `'`}),
		Style:         BlockBrace,
		Patterns: []Pattern{
			pat(Class, `^(\s*(?:open\s+|abstract\s+|sealed\s+|data\s+|inner\s+)*class\s+(\w+))`),
			pat(Interface, `^(\s*interface\s+(\w+))`),
			pat(Enum, `^(\s*enum\s+class\s+(\w+))`),
			pat(Function, `^(\s*(?:public\s+|private\s+|protected\s+|internal\s+)?(?:open\s+|override\s+)?`+
				`(?:suspend\s+)?fun\s+(?:<[^>]+>\s+)?(\w+)\s*\()`),
			pat(Constant, `^(\s*(?:const\s+)?val\s+(\w+))`),
			pat(Variable, `^(\s*var\s+(\w+))`),
			pat(Module, `^(\s*(?:object|companion\s+object)\s+(\w*))`),
			pat(Import, `^(\s*import\s+(.+))`),
			pat(Decorator, `^(\s*@(\w[\w.]*)\s*)`),
		},
	}
}
