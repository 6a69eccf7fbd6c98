package main

import "shnippet/cmd/cli"

// shnippet-exec runs shnippets directly: `shnippet-exec build` is the same as
// `shnippet exec build`.
func main() {
	cli.RunCLI(cli.Direct)
}
