package main

import "github.com/cureplus/website/cmd/cureplus-cli/cmd"

func main() {
	cmd.Execute()
}
