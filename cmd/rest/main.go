package main

import (
	"context"
	"log"

	"ai-devicechat-be/internal/bootstrap"
	"ai-devicechat-be/internal/config"
	"ai-devicechat-be/internal/server"
	"ai-devicechat-be/internal/tracer"
	"ai-devicechat-be/pkg/database"
)

func main() {
	// 0. Initialize Tracer
	shutdownTracer := tracer.InitTracer()
	defer shutdownTracer(context.Background())

	// 1. Load Configuration
	cfg := config.Load()

	// 2. Initialize Database
	gormDB, err := database.NewGormDBFromDSN(cfg.Database.Connection)
	if err != nil {
		log.Panicf("Unable to connect to GORM DB: %v", err)
	}

	// 3. Bootstrap Dependencies (Container)
	container := bootstrap.NewContainer(gormDB, cfg)
	defer container.Logger.Sync()

	// 4. Start Background Services
	go func() {
		log.Println("Background: Starting Audit Consumer Service...")
		if err := container.AuditConsumerService.Consume(context.Background()); err != nil {
			log.Printf("Background Audit Consumer Error: %v", err)
		}
	}()

	// 5. Initialize Server
	srv := server.New(cfg, container)

	// 6. Run Server
	log.Fatal(srv.Run())
}
