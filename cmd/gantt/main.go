package main

import (
	"fmt"
	"os"

	"github.com/alexanderramin/gantt/internal/cli"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	app := &cli.App{
		Config: cli.LoadConfig(),
		Out:    os.Stdout,
		Err:    os.Stderr,
	}
	return cli.NewRootCmd(app).Execute()
}
