package main

import "github.com/objectdraw/objectdraw/cmd/objectdraw/commands"

func main() {
	commands.Execute()
}
