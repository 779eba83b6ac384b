// Command hirectl is the operator CLI for the hiring pipeline backend.
//
//	hirectl migrate [up|down|status]
//	hirectl seed [--file fixtures.yaml] [--dry-run]
//	hirectl search <query...> [--posting id] [--sort field] [--order asc|desc]
//	hirectl summary
//
// It reads the same configuration as the server. Exit codes: 0 = success,
// 1 = error.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := newRootCommand().ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}
