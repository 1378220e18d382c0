package main

import "github.com/rdoc-cli/rdoc/cmd"

func main() {
	cmd.Execute()
}
