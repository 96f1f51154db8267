package main

import (
	"context"
	"os"

	"github.com/daystram/sandgoby/uci"
)

func runUCI() error {
	return uci.NewInterface(os.Stdin, os.Stdout).Run(context.Background())
}
