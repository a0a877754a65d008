package db

import (
	"context"
	"fmt"
	"log"

	"github.com/linskybing/client-intake/internal/config"
	"github.com/linskybing/client-intake/internal/domain/audit"
	"github.com/linskybing/client-intake/internal/domain/submission"
	"github.com/redis/go-redis/v9"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

var (
	DB    *gorm.DB
	Redis *redis.Client
)

// DSN builds the postgres connection string from config.
func DSN() string {
	return fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		config.DbHost,
		config.DbPort,
		config.DbUser,
		config.DbPassword,
		config.DbName,
		config.DbSSLMode,
	)
}

func Init() {
	var err error
	DB, err = gorm.Open(postgres.Open(DSN()), &gorm.Config{})
	if err != nil {
		log.Fatal("Failed to connect to DB:", err)
	}

	if err := Migrate(DB); err != nil {
		log.Fatal("Failed to auto migrate:", err)
	}

	log.Println("Database connected and migrated")
}

// Migrate creates or updates the tables owned by this service.
func Migrate(gormDB *gorm.DB) error {
	return gormDB.AutoMigrate(&submission.Submission{}, &audit.AuditLog{})
}

func InitWithGormDB(gormDB *gorm.DB) {
	DB = gormDB
}

// InitRedis connects the draft store. Failure is fatal since wizard sessions
// cannot work without it.
func InitRedis() {
	Redis = redis.NewClient(&redis.Options{
		Addr:     config.RedisAddr,
		Password: config.RedisPassword,
		DB:       config.RedisDB,
	})
	if err := Redis.Ping(context.Background()).Err(); err != nil {
		log.Fatalf("Failed to connect to redis at %s: %v", config.RedisAddr, err)
	}
	log.Printf("Redis connected at %s", config.RedisAddr)
}
