package main

import "github.com/andre0707/pfterm/cmd"

func main() {
	cmd.Execute()
}
