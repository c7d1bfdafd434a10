package main

import "wordplay/cmd/wordplay-cli/cmd"

func main() {
	cmd.Execute()
}
