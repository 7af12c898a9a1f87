package main

import "ringside-backend/cmd/ringside-cli/cmd"

func main() {
	cmd.Execute()
}
