package main

import "github.com/nfrund/mockcord/cmd/mockcord-cli/cmd"

func main() {
	cmd.Execute()
}
