package main

import "github.com/philipparndt/gostudio/cmd"

func main() {
	cmd.Execute()
}
