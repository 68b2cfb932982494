package main

import (
	"context"
	"os"
	"os/signal"

	"github.com/Acidburn0zzz/polymd/internal/commands"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	rootCmd := commands.RootCmd()
	rootCmd.AddCommand(commands.NewCmd())
	rootCmd.AddCommand(commands.ConfigCmd())

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		stop()
		os.Exit(1)
	}
}
