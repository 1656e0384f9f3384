package main

import (
	"log"
	"net/http"
	"os"

	"campuslife/internal/config"
	"campuslife/internal/content"
	"campuslife/internal/game"
	"campuslife/internal/session"
	"campuslife/internal/web"
)

func main() {
	cfg, err := config.Load(".env")
	if err != nil {
		log.Fatal(err)
	}

	bundle, err := content.Load(os.DirFS(cfg.ContentDir))
	if err != nil {
		log.Fatal(err)
	}
	log.Printf("[Server] loaded %d characters from %s", len(bundle.Characters), cfg.ContentDir)

	srv := &web.Server{
		Bundle:        bundle,
		Store:         session.NewMemoryStore[*game.Session](),
		ContentDir:    cfg.ContentDir,
		SettleDelay:   cfg.SettleDelay,
		AllowedOrigin: cfg.AllowedOrigin,
	}

	log.Printf("[Server] listening on %s", cfg.Addr)
	log.Fatal(http.ListenAndServe(cfg.Addr, srv.Routes()))
}
