package lang

func specC() *Spec {
	return &Spec{
		Key:           "c",
		Name:          "C",
		SingleComment: "//",
		MultiStart:    "/*",
		MultiEnd:      "*/",
		StringDelims:  orderDelims([]string{`"`, `'`}),
		Style:         BlockBrace,
		Patterns: []Pattern{
			pat(Struct, `^(\s*(?:typedef\s+)?struct\s+(\w+))`),
			pat(Union, `^(\s*(?:typedef\s+)?union\s+(\w+))`),
			pat(Enum, `^(\s*(?:typedef\s+)?enum\s+(\w+))`),
			pat(Typedef, `^(\s*typedef\s+.+?\s+(\w+)\s*;)`),
			pat(Macro, `^(\s*#\s*define\s+(\w+))`),
			pat(Function, `^(\s*(?:static\s+|inline\s+|extern\s+|const\s+)*`+
				`(?:(?:unsigned|signed|long|short|volatile|register)\s+)*`+
				`(?:void|int|char|float|double|long|short|unsigned|signed|`+
				`size_t|ssize_t|uint\d+_t|int\d+_t|bool|_Bool|FILE|`+
				`\w+_t|\w+)\s*\**\s+`+
				`(\w+)\s*\()`),
			pat(Import, `^(\s*#\s*include\s+(.+))`),
			pat(Variable, `^(\s*(?:static\s+|extern\s+|const\s+)*`+
				`(?:const\s+)?(?:char|int|float|double|void|long|short|unsigned|signed|`+
				`size_t|bool|_Bool|\w+_t)\s*\**\s+`+
				`(\w+)\s*(?:=|;|\[))`),
		},
	}
}
