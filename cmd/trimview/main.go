package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/hmomeni/trimview/utils"
)

const HelpBanner = `
┌┬┐┬─┐┬┌┬┐┬  ┬┬┌─┐┬ ┬
 │ ├┬┘││││└┐┌┘│├┤ │││
 ┴ ┴└─┴┴ ┴ └┘ ┴└─┘└┴┘

Trim window selector for media ranges.
    Version: %s

`

// Version indicates the current build version.
var Version = "dev"

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err := newRootCmd().ExecuteContext(ctx)
	stop()
	if err != nil {
		fmt.Fprintln(os.Stderr, utils.DecorateText(err.Error(), utils.ErrorMessage))
		os.Exit(1)
	}
}
