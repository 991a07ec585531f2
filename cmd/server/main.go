package main

import (
	"context"
	"log"

	"github.com/queueflex/auth-service/internal/server"
	"github.com/queueflex/auth-service/internal/server/config"
)

func main() {

	ctx := context.Background()
	cfg := config.LoadConfig()

	app, err := server.NewApp(ctx, cfg)
	if err != nil {
		log.Fatalf("%v", err)
	}

	app.Run(ctx)
}
