package main

import "commandcenter/cmd/server/cmd"

func main() {
	cmd.Execute()
}
