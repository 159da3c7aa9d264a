package main

import (
	"fmt"
	"os"

	"github.com/xONEIROS/swisstronik-mint-NFT-ERC721/internal/cli"
	"github.com/xONEIROS/swisstronik-mint-NFT-ERC721/internal/cli/render"
)

func main() {
	rootCmd := cli.NewRootCmd()
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, render.FormatError(err))
		os.Exit(1)
	}
}
