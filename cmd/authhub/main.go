package main

import "authhub/cmd/authhub/cmd"

func main() {
	cmd.Execute()
}
