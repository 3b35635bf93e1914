package main

import "github.com/srcfold/srcfold/internal/cli"

func main() {
	cli.Execute()
}
