package main

import "github.com/chaica/gomonerowallet/internal/cli"

func main() {
	cli.Execute()
}
