/*
affine composes, decomposes and inspects 3D affine transforms.
*/
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/spaghettifunk/affine/cmd"
	"github.com/spaghettifunk/affine/engine/core"
)

func main() {
	// cancel on sigterm and other system calls so --watch exits cleanly
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM, syscall.SIGINT, syscall.SIGQUIT)
	defer stop()

	if err := cmd.Execute(ctx, os.Args[1:]); err != nil {
		core.LogError(err.Error())
		stop()
		os.Exit(1)
	}
}
