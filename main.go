package main

import "github.com/mtustin-handy/bruce/cmd"

func main() {
	cmd.Execute()
}
