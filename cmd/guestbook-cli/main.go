package main

import "github.com/coregx/guestbook/cmd/guestbook-cli/cmd"

func main() {
	cmd.Execute()
}
