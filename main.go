package main

import "github.com/lakepipe/lakepipe/cmd"

func main() {
	cmd.Execute()
}
