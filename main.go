package main

import (
	"context"
	"imgresize/api/cli"
	"os"
)

// version will be set while building
var version = "dev"

func main() {
	os.Exit(cli.Run(context.Background(), version, os.Args[1:], os.Stdout, os.Stderr))
}
