package main

import "tacklehire/cmd"

func main() {
	cmd.Execute()
}
