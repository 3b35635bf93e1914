package lang

func specPHP() *Spec {
	return &Spec{
		Key:           "php",
		Name:          "PHP",
		SingleComment: "//",
		MultiStart:    "/*",
		MultiEnd:      "*/",
		StringDelims:  orderDelims([]string{`"`, `'`}),
		Style:         BlockBrace,
		Patterns: []Pattern{
			pat(Class, `^(\s*(?:abstract\s+|final\s+)?class\s+(\w+))`),
			pat(Interface, `^(\s*interface\s+(\w+))`),
			pat(Trait, `^(\s*trait\s+(\w+))`),
			pat(Function, `^(\s*(?:public\s+|private\s+|protected\s+)?(?:static\s+)?function\s+(\w+)\s*\()`),
			pat(Namespace, `^(\s*namespace\s+(.+?);)`),
			pat(Import, `^(\s*(?:use|require|require_once|include|include_once)\s+(.+?);)`),
			pat(Constant, `^(\s*(?:const|define)\s*\(?\s*['"]?(\w+))`),
		},
	}
}
