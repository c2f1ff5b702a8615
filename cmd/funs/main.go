package main

import "github.com/copenhas/funs/cmd/funs/commands"

func main() {
	commands.Execute()
}
