package lang

func specShell() *Spec {
	return &Spec{
		Key:           "shell",
		Name:          "Shell",
		SingleComment: "#",
		StringDelims:  orderDelims([]string{`"`, `'`}),
		Style:         BlockBrace,
		Patterns: []Pattern{
			pat(Function, `^(\s*(?:function\s+)?(\w+)\s*\(\s*\))`),
			pat(Variable, `^(\s*(?:export\s+|readonly\s+|declare\s+(?:-\w+\s+)*)?`+
				`([A-Z_][A-Z_0-9]*)\s*=)`),
			pat(Import, `^(\s*(?:source|\.)\s+(.+))`),
		},
	}
}
