package main

import "github.com/speakuppartners/site/cmd/sup-cli/cmd"

func main() {
	cmd.Execute()
}
