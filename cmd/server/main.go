package main

import "phonefix/cmd/server/cmd"

func main() {
	cmd.Execute()
}
