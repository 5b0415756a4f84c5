package main

import (
	"github.com/soypat/foc/cmd/focctl/cmd"
)

func main() {
	cmd.Execute()
}
