package main

import "shnippet/cmd/cli"

func main() {
	cli.RunCLI(cli.Primary)
}
