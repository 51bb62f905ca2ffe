package main

import (
	"context"
	"log"

	"github.com/dmitrijs2005/docvault/internal/vault"
	"github.com/dmitrijs2005/docvault/internal/vault/config"
)

func main() {

	ctx := context.Background()
	cfg := config.LoadConfig()
	app, err := vault.NewApp(ctx, cfg)

	if err != nil {
		log.Printf("%v", err)
		return
	}

	if err := app.Run(ctx); err != nil {
		log.Printf("%v", err)
	}

}
