package lang

func specRuby() *Spec {
	return &Spec{
		Key:           "ruby",
		Name:          "Ruby",
		SingleComment: "#",
		MultiStart:    "=begin",
		MultiEnd:      "=end",
		StringDelims:  orderDelims([]string{`"`, `'`}),
		Style:         BlockKeyword,
		Patterns: []Pattern{
			pat(Class, `^(\s*class\s+(\w+))`),
			pat(Module, `^(\s*module\s+(\w+))`),
			pat(Function, `^(\s*def\s+(?:self\.)?(\w+[?!=]?))`),
			pat(Constant, `^(\s*([A-Z][A-Z_0-9]+)\s*=)`),
			pat(Import, `^(\s*require(?:_relative)?\s+(.+))`),
			pat(Decorator, `^(\s*attr_(?:reader|writer|accessor)\s+(.+))`),
		},
	}
}
