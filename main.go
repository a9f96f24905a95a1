package main

import "github.com/mkofman/pitchmatch/cmd"

func main() {
	cmd.Execute()
}
