package main

import "starfield/cmd"

func main() {
	cmd.Execute()
}
