package main

import (
	"log"
	"os"
	"time"

	"ai-devicechat-be/internal/entity"
	"ai-devicechat-be/pkg/database"

	"github.com/joho/godotenv"
)

func strPtr(s string) *string { return &s }

func timePtr(t time.Time) *time.Time { return &t }

func main() {
	// Load Environment Variables
	if err := godotenv.Load(); err != nil {
		log.Println("Info: No .env file found, using system env")
	}

	dsn := os.Getenv("DB_CONNECTION_STRING")
	if dsn == "" {
		log.Fatal("Error: DB_CONNECTION_STRING is not set")
	}

	db, err := database.NewGormDBFromDSN(dsn)
	if err != nil {
		log.Fatal("Error: Failed to connect to database:", err)
	}

	log.Println("Seeding device activity logs...")

	now := time.Now()
	rows := []entity.DeviceActivityLog{
		{DeviceId: "DEV01", DeviceModel: strPtr("Router Cisco 2901"), Status: "online", Location: strPtr("Jakarta DC-1"), Timestamp: timePtr(now.Add(-10 * time.Minute))},
		{DeviceId: "DEV01", DeviceModel: strPtr("Router Cisco 2901"), Status: "degraded", Location: strPtr("Jakarta DC-1"), Timestamp: timePtr(now.Add(-2 * time.Hour))},
		{DeviceId: "RTR22", DeviceModel: strPtr("Router Huawei NE40"), Status: "offline", Location: strPtr("Bandung POP-3"), Timestamp: timePtr(now.Add(-30 * time.Minute))},
		{DeviceId: "OLT-JKT-001", DeviceModel: strPtr("OLT Huawei MA5800"), Status: "online", Location: strPtr("Jakarta DC-2"), Timestamp: timePtr(now.Add(-5 * time.Minute))},
		{DeviceId: "OLT-BDG-002", DeviceModel: strPtr("OLT ZTE C320"), Status: "maintenance", Location: strPtr("Bandung POP-1"), Timestamp: timePtr(now.Add(-1 * time.Hour))},
		{DeviceId: "SW105", DeviceModel: strPtr("Switch Cisco Catalyst"), Status: "online", Location: nil, Timestamp: timePtr(now.Add(-15 * time.Minute))},
		{DeviceId: "SRV88", DeviceModel: nil, Status: "online", Location: strPtr("Surabaya DC-1"), Timestamp: nil},
	}

	for _, row := range rows {
		if err := db.Create(&row).Error; err != nil {
			log.Printf("Error seeding row for '%s': %v", row.DeviceId, err)
		} else {
			log.Printf("Seeded activity for device: %s (%s)", row.DeviceId, row.Status)
		}
	}

	log.Println("Device activity seeding completed!")
}
