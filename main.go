package main

import (
	"context"
	"fmt"
	"os"

	"aahar-telegram/bot"
	"aahar-telegram/config"
	"aahar-telegram/services"
	"aahar-telegram/store"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, "config:", err)
		os.Exit(1)
	}
	if cfg.Telegram.Token == "" {
		fmt.Fprintln(os.Stderr, "TOKEN not set")
		os.Exit(1)
	}

	// Sessions are the only durable state. Postgres when DATABASE_URL is
	// set, otherwise a local JSON file.
	var st store.Store
	if cfg.Store.DatabaseURL != "" {
		pg, err := store.NewPGStore(context.Background(), cfg.Store.DatabaseURL)
		if err != nil {
			fmt.Fprintln(os.Stderr, "store:", err)
			os.Exit(1)
		}
		defer pg.Close()
		st = pg
	} else {
		st = store.NewFileStore(cfg.Store.Path)
	}

	catalog := services.NewCatalog(services.DefaultCatalog())
	sessions := services.NewSessions(st, cfg.Auth.AdminCode, cfg.Auth.CustomerCode)

	b, err := bot.New(cfg, catalog, sessions)
	if err != nil {
		fmt.Fprintln(os.Stderr, "bot:", err)
		os.Exit(1)
	}

	fmt.Println("Bot started.")
	b.Start()
}
