package main

import "github.com/bgraf/cardtag/cmd"

func main() {
	cmd.Execute()
}
