package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"github.com/goliatone/go-apinsible/internal/prompt"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	cmd := RootCmd(prompt.NewSurveyDriver())
	if err := cmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}
