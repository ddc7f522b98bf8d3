package main

import (
	"fmt"
	"os"

	"github.com/finmindlabs/finmind/cmd/finmind"
)

func main() {
	if err := finmind.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
