package main

import (
	"fmt"
	"os"

	"github.com/muesli/termenv"

	"github.com/rocketscienceinc/hasami-shogi-backend/internal/hasami"
	"github.com/rocketscienceinc/hasami-shogi-backend/internal/shell"
)

func main() {
	output := termenv.NewOutput(os.Stdout)

	if err := shell.New(os.Stdin, output, hasami.NewGame()).Run(); err != nil {
		fmt.Fprintf(os.Stderr, "shell failed: %v\n", err)
		os.Exit(1)
	}
}
