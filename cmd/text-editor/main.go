package main

import "github.com/jeremyd1/text-editor/cmd/text-editor/cmd"

func main() {
	cmd.Execute()
}
