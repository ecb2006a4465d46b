package main

import "github.com/sunlz/cmd"

func main() {
	cmd.Execute()
}
