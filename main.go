package main

import "github.com/mvidal/launchbox/cmd"

func main() {
	cmd.Execute()
}
