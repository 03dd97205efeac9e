package main

import (
	"context"
	"os"
	"os/signal"

	"github.com/yeisme/dcolor/cmd"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	cmd.Execute(ctx)
}
