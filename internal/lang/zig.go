package lang

func specZig() *Spec {
	return &Spec{
		Key:           "zig",
		Name:          "Zig",
		SingleComment: "//",
		StringDelims:  orderDelims([]string{`"`, `'`}),
		Style:         BlockBrace,
		Patterns: []Pattern{
			pat(Function, `^(\s*(?:pub\s+|export\s+)?fn\s+(\w+))`),
			pat(Struct, `^(\s*(?:pub\s+)?const\s+(\w+)\s*=\s*(?:extern\s+|packed\s+)?struct\b)`),
			pat(Enum, `^(\s*(?:pub\s+)?const\s+(\w+)\s*=\s*enum\b)`),
			pat(Union, `^(\s*(?:pub\s+)?const\s+(\w+)\s*=\s*(?:extern\s+|packed\s+)?union\b)`),
			pat(Import, `^(\s*const\s+(\w+)\s*=\s*@import\()`),
			pat(Constant, `^(\s*(?:pub\s+)?const\s+(\w+)\s*(?::\s*[^=]+)?\s*=)`),
			pat(Variable, `^(\s*(?:pub\s+)?var\s+(\w+))`),
		},
	}
}
