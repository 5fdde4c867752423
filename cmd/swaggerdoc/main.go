package main

import (
	"fmt"
	"os"

	"github.com/vitalvas/swaggerdoc/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "swaggerdoc:", err)
		os.Exit(cli.ExitCode(err))
	}
}
