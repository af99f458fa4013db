package main

import "github.com/cdclaxton/guitar-tab-generator/internal/cli"

func main() {
	cli.Execute()
}
