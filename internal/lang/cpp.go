package lang

func specCPP() *Spec {
	return &Spec{
		Key:           "cpp",
		Name:          "C++",
		SingleComment: "//",
		MultiStart:    "/*",
		MultiEnd:      "*/",
		StringDelims:  orderDelims([]string{`"`, `'`}),
		Style:         BlockBrace,
		Patterns: []Pattern{
			pat(Class, `^(\s*(?:template\s*<[^>]*>\s*)?class\s+(\w+))`),
			pat(Struct, `^(\s*(?:template\s*<[^>]*>\s*)?struct\s+(\w+))`),
			pat(Enum, `^(\s*enum\s+(?:class\s+)?(\w+))`),
			pat(Namespace, `^(\s*namespace\s+(\w+))`),
			pat(Function, `^(\s*(?:static\s+|inline\s+|virtual\s+|explicit\s+|`+
				`constexpr\s+|consteval\s+|constinit\s+|extern\s+|const\s+)*`+
				`(?:auto|void|int|char|float|double|long|short|unsigned|signed|`+
				`bool|string|wstring|size_t|\w+(?:::\w+)*)\s*[&*]*\s*`+
				`(\w+(?:::\w+)*)\s*\()`),
			pat(Macro, `^(\s*#\s*define\s+(\w+))`),
			pat(Import, `^(\s*#\s*include\s+(.+))`),
			pat(TypeAlias, `^(\s*(?:using|typedef)\s+(\w+))`),
		},
	}
}
