package main

import (
	"flag"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shirtstore/shirts-api/internal/security"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

type Application struct {
	ApplicationID   uint   `gorm:"primaryKey"`
	ApplicationName string
	ClientID        string `gorm:"uniqueIndex;not null"`
	SecretSalt      string `gorm:"not null"`
	SecretHash      string `gorm:"not null"`
	Scopes          string
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

func (Application) TableName() string {
	return "applications"
}

func main() {
	// Parse command line flags
	name := flag.String("name", "dev-client", "Application name")
	scopes := flag.String("scopes", "read,write,delete", "Comma-separated scopes")
	dbPath := flag.String("db", "shirts.sqlite", "SQLite database path")
	flag.Parse()

	db, err := gorm.Open(sqlite.Open(*dbPath), &gorm.Config{})
	if err != nil {
		log.Fatal("Failed to connect to database:", err)
	}

	if err := db.AutoMigrate(&Application{}); err != nil {
		log.Fatal("Failed to migrate schema:", err)
	}

	clientID := strings.ReplaceAll(uuid.NewString(), "-", "")
	rawSecret := strings.ReplaceAll(uuid.NewString(), "-", "")

	salt, hash, err := security.HashSecret(rawSecret)
	if err != nil {
		log.Fatal("Failed to hash secret:", err)
	}

	app := Application{
		ApplicationName: *name,
		ClientID:        clientID,
		SecretSalt:      salt,
		SecretHash:      hash,
		Scopes:          *scopes,
	}
	if err := db.Create(&app).Error; err != nil {
		log.Fatal("Failed to create application:", err)
	}

	fmt.Println("Created development client:")
	fmt.Printf("  clientId: %s\n", clientID)
	fmt.Printf("  secret:   %s (shown once, store it now)\n", rawSecret)
	fmt.Printf("  scopes:   %s\n", *scopes)
}
