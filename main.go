package main

import (
	"os"

	"github.com/shailiguru/ssat-practice/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
