package main

import "devdash/cmd/client/cmd"

func main() {
	cmd.Execute()
}
