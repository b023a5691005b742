// Command valida sanitizes and validates JSON documents against schema files.
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	code := execute(ctx, os.Args[1:], &app{out: os.Stdout, errOut: os.Stderr})
	stop()
	os.Exit(code)
}
