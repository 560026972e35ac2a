package main

import (
	"github.com/epubtools/parser-catalog/internal/cli"
)

func main() {
	cli.Execute()
}
