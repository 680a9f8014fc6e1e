package main

import "github.com/oshokin/alarm-bot/cmd/alarm-client/cmd"

func main() {
	cmd.Execute()
}
