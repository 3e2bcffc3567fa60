package main

import "shipscout/cmd"

func main() {
	cmd.Execute()
}
