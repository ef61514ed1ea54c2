package main

import "smartreply/cmd"

func main() {
	cmd.Execute()
}
