package main

import (
	"log"

	"github.com/joho/godotenv"

	"github.com/huyquangvevo/vcs-hrms/internal/config"
	"github.com/huyquangvevo/vcs-hrms/internal/routes"
	"github.com/huyquangvevo/vcs-hrms/internal/storage"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found")
	}
	cfg := config.Load()

	db, err := storage.Open(cfg.DBPath)
	if err != nil {
		log.Fatal("Error when open db: ", err)
	}
	defer storage.Close(db)

	r := routes.New(db, cfg.CORSOrigin)

	addr := ":" + cfg.Port
	log.Printf("Server running on %s", addr)
	if err := r.Run(addr); err != nil {
		log.Fatal(err)
	}
}
