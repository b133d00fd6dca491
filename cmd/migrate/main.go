package main

import (
	"context"
	"database/sql"
	"fmt"
	"log"
	"os"

	"github.com/groomday/groomday-backend-go/internal/config"
	"github.com/groomday/groomday-backend-go/internal/pkg/migrate"

	_ "github.com/jackc/pgx/v5/stdlib"
)

func main() {
	if len(os.Args) < 2 {
		fmt.Println("usage: migrate <up|down|status|create|redo|version> [args]")
		os.Exit(1)
	}
	command := os.Args[1]
	args := os.Args[2:]

	cfg, err := config.Load()
	if err != nil {
		log.Fatal("Error loading config: ", err)
	}

	db, err := sql.Open("pgx", cfg.DatabaseURL())
	if err != nil {
		log.Fatal("Error opening database: ", err)
	}
	defer db.Close()

	if err := migrate.Run(context.Background(), db, migrate.DefaultDir, command, args...); err != nil {
		log.Fatal("Migration failed: ", err)
	}
}
