package main

import "github.com/franciscosanchezn/pizzeria-catalog/cmd/catalogctl/commands"

func main() {
	commands.Execute()
}
