package main

import (
	"context"
	"log"

	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"schulhof.app/gradebook/internal/bootstrap"
	"schulhof.app/gradebook/internal/config"
	"schulhof.app/gradebook/internal/model"
	"schulhof.app/gradebook/internal/repository"
	"schulhof.app/gradebook/internal/server"
	"schulhof.app/gradebook/pkg/database"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	db := database.Connect(cfg.DatabaseURL)
	if err := migrate(db); err != nil {
		log.Fatalf("migration failed: %v", err)
	}

	redisClient := connectRedis(cfg.RedisURL)

	srv := server.NewServer(db, redisClient, cfg)

	userRepo := repository.NewUserRepository(db)
	if err := bootstrap.EnsureAdminUser(context.Background(), userRepo, srv.Users); err != nil {
		log.Fatalf("failed to provision admin user: %v", err)
	}

	if err := srv.Run(":" + cfg.Port); err != nil {
		log.Fatalf("server exited with error: %v", err)
	}
}

func migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&model.User{},
		&model.Student{},
		&model.Subject{},
		&model.Semester{},
		&model.SemesterSubject{},
		&model.SchoolClass{},
		&model.Test{},
		&model.Grade{},
	)
}

func connectRedis(url string) *redis.Client {
	if url == "" {
		log.Println("REDIS_URL not set, login throttling disabled")
		return nil
	}

	opts, err := redis.ParseURL(url)
	if err != nil {
		log.Fatalf("invalid REDIS_URL: %v", err)
	}

	client := redis.NewClient(opts)
	if err := client.Ping(context.Background()).Err(); err != nil {
		log.Printf("redis unavailable, login throttling disabled: %v", err)
		return nil
	}

	return client
}
