package main

import (
	"errors"
	"flag"
	"log"
	"os"

	"github.com/pdrpinto/gridpath/internal/cli"
)

func main() {
	err := cli.Run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr)
	if errors.Is(err, flag.ErrHelp) {
		return
	}
	if err != nil {
		log.Fatalf("gridpath: %v", err)
	}
}
