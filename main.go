package main

import (
	"fmt"
	"os"
	"userctl/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "userctl run into an error: %s\n", err)
		os.Exit(1)
	}
}
