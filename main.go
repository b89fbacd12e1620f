package main

import "cartscope/cmd"

func main() {
	cmd.Execute()
}
