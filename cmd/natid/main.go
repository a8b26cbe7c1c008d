// Package main is the entry point for the natid CLI.
package main

import (
	"context"
	"os"
	"os/signal"

	"natid/internal/cli"
)

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
	code := cli.ExecuteContext(ctx)
	cancel()
	os.Exit(code)
}
