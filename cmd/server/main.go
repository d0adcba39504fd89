package main

import (
	"log"

	"github.com/garvv29/Suraksha/internal/config"
	"github.com/garvv29/Suraksha/internal/database"
	"github.com/garvv29/Suraksha/internal/server"
)

func main() {
	cfg := config.Load()
	database.Init(cfg)

	app := server.New(cfg)

	log.Println("Server running on port:", cfg.HTTPPort)
	if err := app.Listen(":" + cfg.HTTPPort); err != nil {
		log.Fatal(err)
	}
}
