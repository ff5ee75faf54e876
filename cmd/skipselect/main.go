package main

import (
	"os"

	"github.com/Selahattinozdmr/rem-waste-demo/internal/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
