package main

import (
	"context"
	"log"

	"notes-api-be/internal/bootstrap"
	"notes-api-be/internal/config"
	"notes-api-be/internal/server"
	"notes-api-be/internal/tracer"
	"notes-api-be/pkg/database"
)

func main() {
	// 1. Tracer
	shutdownTracer := tracer.InitTracer()
	defer shutdownTracer(context.Background())

	// 2. Configuration
	cfg := config.Load()

	// 3. Database
	gormDB, err := database.NewGormDBFromDSN(cfg.Database.Connection)
	if err != nil {
		log.Panicf("Unable to connect to GORM DB: %v", err)
	}

	// 4. Bootstrap dependencies
	container := bootstrap.NewContainer(gormDB, cfg)

	// 5. Event consumer (audit trail)
	go func() {
		if err := container.ConsumerService.Consume(context.Background()); err != nil {
			log.Printf("Background consumer error: %v", err)
		}
	}()

	// 6. Server
	srv := server.New(cfg, container)
	log.Fatal(srv.Run())
}
