package lang

func specRust() *Spec {
	return &Spec{
		Key:           "rust",
		Name:          "Rust",
		SingleComment: "//",
		MultiStart:    "/*",
		MultiEnd:      "*/",
		StringDelims:  orderDelims([]string{`"`, `'`}),
		Style:         BlockBrace,
		Patterns: []Pattern{
			pat(Function, `^(\s*(?:pub(?:\(\w+\))?\s+)?(?:async\s+)?(?:unsafe\s+)?(?:extern\s+"C"\s+)?fn\s+(\w+))`),
			pat(Struct, `^(\s*(?:pub(?:\(\w+\))?\s+)?struct\s+(\w+))`),
			pat(Enum, `^(\s*(?:pub(?:\(\w+\))?\s+)?enum\s+(\w+))`),
			pat(Trait, `^(\s*(?:pub(?:\(\w+\))?\s+)?(?:unsafe\s+)?trait\s+(\w+))`),
			pat(Impl, `^(\s*impl(?:<[^>]*>)?\s+(?:(\w+(?:<[^>]*>)?)\s+for\s+)?(\w+))`),
			pat(Module, `^(\s*(?:pub(?:\(\w+\))?\s+)?mod\s+(\w+))`),
			pat(Macro, `^(\s*(?:pub(?:\(\w+\))?\s+)?macro_rules!\s+(\w+))`),
			pat(Constant, `^(\s*(?:pub(?:\(\w+\))?\s+)?(?:const|static)\s+(\w+))`),
			pat(TypeAlias, `^(\s*(?:pub(?:\(\w+\))?\s+)?type\s+(\w+))`),
			pat(Import, `^(\s*use\s+(.+?);)`),
			pat(Decorator, `^(\s*#\[(\w[^\]]*)\])`),
		},
	}
}
