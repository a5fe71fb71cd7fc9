package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"expansion/cmd"
)

// @title Expansion API
// @version 1.0
// @description Planejamento de expansão por cidade: projeções, planos, blocos de mercado e indicadores.
// @BasePath /
// @securityDefinitions.apikey ApiKeyAuth
// @in header
// @name Authorization
func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM, syscall.SIGINT)
	defer stop()

	if err := cmd.Execute(ctx, os.Args[1:]); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
