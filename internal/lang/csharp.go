package lang

func specCSharp() *Spec {
	return &Spec{
		Key:           "csharp",
		Name:          "C#",
		SingleComment: "//",
		MultiStart:    "/*",
		MultiEnd:      "*/",
		StringDelims:  orderDelims([]string{`"`, `'`}),
		Style:         BlockBrace,
		Patterns: []Pattern{
			pat(Class, `^(\s*(?:public\s+|private\s+|protected\s+|internal\s+)?(?:static\s+)?`+
				`(?:sealed\s+|abstract\s+|partial\s+)?class\s+(\w+))`),
			pat(Interface, `^(\s*(?:public\s+|private\s+|protected\s+|internal\s+)?interface\s+(\w+))`),
			pat(Struct, `^(\s*(?:public\s+|private\s+|protected\s+|internal\s+)?`+
				`(?:readonly\s+)?struct\s+(\w+))`),
			pat(Enum, `^(\s*(?:public\s+|private\s+|protected\s+|internal\s+)?enum\s+(\w+))`),
			pat(Namespace, `^(\s*namespace\s+(\w[\w.]*))`),
			pat(Function, `^(\s*(?:public\s+|private\s+|protected\s+|internal\s+)?(?:static\s+)?`+
				`(?:async\s+)?(?:virtual\s+|override\s+|abstract\s+)?`+
				`(?:void|int|char|float|double|long|short|byte|bool|decimal|`+
				`string|object|var|Task|IEnumerable|\w+(?:<[^>]*>)?)\s*(?:\[\])?\s+`+
				`(\w+)\s*\()`),
			pat(Property, `^(\s*(?:public\s+|private\s+|protected\s+|internal\s+)?(?:static\s+)?`+
				`(?:virtual\s+|override\s+)?(?:required\s+)?`+
				`\w+(?:<[^>]*>)?\s+(\w+)\s*\{)`),
			pat(Import, `^(\s*using\s+(.+?);)`),
			pat(Decorator, `^(\s*\[(\w[\w.]*(?:\([^)]*\))?)\])`),
			pat(Constant, `^(\s*(?:public\s+|private\s+)?const\s+\w+\s+(\w+)\s*=)`),
		},
	}
}
