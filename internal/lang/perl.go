package lang

func specPerl() *Spec {
	return &Spec{
		Key:           "perl",
		Name:          "Perl",
		SingleComment: "#",
		MultiStart:    "=pod",
		MultiEnd:      "=cut",
		StringDelims:  orderDelims([]string{`"`, `'`}),
		Style:         BlockBrace,
		Patterns: []Pattern{
			pat(Function, `^(\s*sub\s+(\w+))`),
			pat(Module, `^(\s*package\s+(\w[\w:]*))`),
			pat(Constant, `^(\s*(?:use\s+constant\s+(\w+)))`),
			pat(Import, `^(\s*(?:use|require)\s+(.+?);)`),
		},
	}
}
