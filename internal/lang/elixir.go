package lang

func specElixir() *Spec {
	return &Spec{
		Key:               "elixir",
		Name:              "Elixir",
		SingleComment:     "#",
		StringDelims:      orderDelims([]string{`"`, `'`}),
		Style:             BlockKeyword,
		IndentSignificant: true,
		Patterns: []Pattern{
			pat(Module, `^(\s*defmodule\s+(\w[\w.]*))`),
			pat(Function, `^(\s*(?:def|defp|defmacro|defmacrop)\s+(\w+))`),
			pat(Protocol, `^(\s*defprotocol\s+(\w[\w.]*))`),
			pat(Impl, `^(\s*defimpl\s+(\w[\w.]*))`),
			pat(Struct, `^(\s*defstruct\s+(.+))`),
			pat(Import, `^(\s*(?:import|alias|use|require)\s+(.+))`),
		},
	}
}
