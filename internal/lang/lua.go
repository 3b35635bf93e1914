package lang

func specLua() *Spec {
	return &Spec{
		Key:           "lua",
		Name:          "Lua",
		SingleComment: "--",
		MultiStart:    "--[[",
		MultiEnd:      "]]",
		StringDelims:  orderDelims([]string{`"`, `'`}),
		Style:         BlockKeyword,
		Patterns: []Pattern{
			pat(Function, `^(\s*(?:local\s+)?function\s+(\w[\w.:]*))\s*\(`),
			pat(Function, `^(\s*(?:local\s+)?(\w[\w.]*)\s*=\s*function\s*\()`),
			pat(Variable, `^(\s*local\s+(\w+)\s*=)`),
		},
	}
}
