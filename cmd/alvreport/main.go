package main

import (
	"os"

	"github.com/svsticky/alvreport/internal/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
