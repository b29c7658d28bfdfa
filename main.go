package main

import "treefs/cmd"

func main() {
	cmd.Execute()
}
