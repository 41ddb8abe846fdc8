package main

import (
	"os"
)

func main() {
	if err := newRootCmd(buildRuntime).Execute(); err != nil {
		os.Exit(1)
	}
}
