package main

import (
	"os"

	"github.com/Lzww0608/strhelp/cmd/strhelp/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
