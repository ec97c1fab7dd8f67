package main

import "rune-forge/cmd"

func main() {
	cmd.Execute()
}
