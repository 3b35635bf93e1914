package lang

func specJavaScript() *Spec {
	return &Spec{
		Key:           "javascript",
		Name:          "JavaScript",
		SingleComment: "//",
		MultiStart:    "/*",
		MultiEnd:      "*/",
		StringDelims:  orderDelims([]string{`"`, `'`, "`"}),
		Style:         BlockBrace,
		Patterns: []Pattern{
			pat(Class, `^(\s*(?:export\s+)?(?:default\s+)?class\s+(\w+))`),
			pat(Function, `^(\s*(?:export\s+)?(?:default\s+)?(?:async\s+)?function\s*\*?\s+(\w+)\s*\()`),
			pat(Function, `^(\s*(?:export\s+)?(?:const|let|var)\s+(\w+)\s*=\s*(?:async\s+)?`+
				`(?:function|\([^)]*\)\s*=>|[a-zA-Z_]\w*\s*=>))`),
			pat(Component, `^(\s*(?:export\s+)?(?:default\s+)?(?:const|let|var)\s+(\w+)\s*=\s*`+
				`(?:React\.)?(?:memo|forwardRef|lazy)\s*\()`),
			pat(Constant, `^(\s*(?:export\s+)?const\s+([A-Z][A-Z_0-9]+)\s*=)`),
			pat(Import, `^(\s*import\s+(.+))`),
			pat(Module, `^(\s*(?:export\s+)?(?:default\s+)?(?:const|let|var)\s+(\w+)\s*=\s*`+
				`require\s*\()`),
		},
	}
}
