// Package main is the entry point for dadbod-seed, which registers the dadbod
// NFT collection catalog on Chainweb.
package main

import (
	"dadbod/seed/cmd"
)

func main() {
	cmd.Execute()
}
