package lang

func specTypeScript() *Spec {
	return &Spec{
		Key:           "typescript",
		Name:          "TypeScript",
		SingleComment: "//",
		MultiStart:    "/*",
		MultiEnd:      "*/",
		StringDelims:  orderDelims([]string{`"`, `'`, "`"}),
		Style:         BlockBrace,
		Patterns: []Pattern{
			pat(Interface, `^(\s*(?:export\s+)?interface\s+(\w+))`),
			pat(TypeAlias, `^(\s*(?:export\s+)?type\s+(\w+)\s*(?:<[^>]*>)?\s*=)`),
			pat(Enum, `^(\s*(?:export\s+)?(?:const\s+)?enum\s+(\w+))`),
			pat(Class, `^(\s*(?:export\s+)?(?:default\s+)?(?:abstract\s+)?class\s+(\w+))`),
			pat(Function, `^(\s*(?:export\s+)?(?:default\s+)?(?:async\s+)?function\s*\*?\s+(\w+)\s*)`),
			pat(Function, `^(\s*(?:export\s+)?(?:const|let|var)\s+(\w+)\s*(?::\s*[^=]+)?\s*=\s*`+
				`(?:async\s+)?(?:function|\([^)]*\)\s*(?::\s*[^=]+)?\s*=>|`+
				`[a-zA-Z_]\w*\s*=>))`),
			pat(Namespace, `^(\s*(?:export\s+)?(?:declare\s+)?namespace\s+(\w+))`),
			pat(Module, `^(\s*(?:export\s+)?(?:declare\s+)?module\s+(\w+))`),
			pat(Import, `^(\s*import\s+(.+))`),
			pat(Decorator, `^(\s*@(\w[\w.]*)\s*)`),
		},
	}
}
