package lang

func specJava() *Spec {
	return &Spec{
		Key:           "java",
		Name:          "Java",
		SingleComment: "//",
		MultiStart:    "/*",
		MultiEnd:      "*/",
		StringDelims:  orderDelims([]string{`"`, `'`}),
		Style:         BlockBrace,
		Patterns: []Pattern{
			pat(Class, `^(\s*(?:public\s+|private\s+|protected\s+)?(?:static\s+)?`+
				`(?:final\s+)?(?:abstract\s+)?class\s+(\w+))`),
			pat(Interface, `^(\s*(?:public\s+|private\s+|protected\s+)?interface\s+(\w+))`),
			pat(Enum, `^(\s*(?:public\s+|private\s+|protected\s+)?enum\s+(\w+))`),
			pat(Function, `^(\s*(?:public\s+|private\s+|protected\s+)?(?:static\s+)?`+
				`(?:final\s+)?(?:synchronized\s+)?(?:native\s+)?`+
				`(?:abstract\s+)?(?:<[^>]+>\s+)?`+
				`(?:void|int|char|float|double|long|short|byte|boolean|`+
				`String|Object|List|Map|Set|Optional|\w+(?:<[^>]*>)?)\s*(?:\[\])?\s+`+
				`(\w+)\s*\()`),
			pat(Import, `^(\s*import\s+(?:static\s+)?(.+?);)`),
			pat(Module, `^(\s*package\s+(.+?);)`),
			pat(Decorator, `^(\s*@(\w[\w.]*(?:\([^)]*\))?))`),
			pat(Constant, `^(\s*(?:public\s+|private\s+|protected\s+)?static\s+final\s+\w+\s+([A-Z_]\w*)\s*=)`),
		},
	}
}
