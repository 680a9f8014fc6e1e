package main

import "github.com/oshokin/alarm-bot/cmd/alarm-server/cmd"

func main() {
	cmd.Execute()
}
