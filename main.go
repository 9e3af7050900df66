package main

import (
	"github.com/lainsato/valuecell/cmd"
)

func main() {
	cmd.Execute()
}
