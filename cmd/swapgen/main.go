// Command swapgen collects SWAP generator project metadata through a
// sequence of prompts.
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/sirap-group/swapgen/internal/cli"
	"github.com/sirap-group/swapgen/internal/errors"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	go func() {
		// a second signal falls back to the default handler and kills the process
		<-ctx.Done()
		stop()
	}()
	err := cli.Run(ctx, os.Args[1:], os.Stdin, os.Stdout, os.Stderr)
	stop()
	if err != nil {
		errors.Print(os.Stderr, err)
		os.Exit(errors.ExitCode(err))
	}
}
