package main

import (
	"context"
	"flag"

	"github.com/shrimpsizemoose/trekker/logger"

	"github.com/6rayWa1cher/course-journal-backend-sub001/internal/app"
)

func main() {
	var configPath = flag.String("config", "config.toml", "Path to config file")
	var migrate = flag.Bool("migrate", false, "Apply pending migrations and exit")
	var courseToken = flag.Int64("course-token", 0, "Fetch or mint the join token for the given course id")
	var revokeToken = flag.Int64("revoke-token", 0, "Revoke the join token of the given course id")
	flag.Parse()

	service, err := app.NewService(*configPath)
	if err != nil {
		logger.Error.Fatalf("Failed to load config: %v", err)
	}
	defer service.Close()

	switch {
	case *migrate:
		if err := service.Store.ApplyMigrations(service.Config.Database.MigrationsDir); err != nil {
			logger.Error.Fatalf("Failed to apply migrations: %v", err)
		}
		logger.Info.Println("Migrations applied")
	case *courseToken != 0:
		course, err := service.GetCourse(*courseToken)
		if err != nil {
			logger.Error.Fatalf("Failed to fetch course %d: %v", *courseToken, err)
		}
		tm := service.Auth.TokenManager()
		if tm == nil {
			logger.Error.Fatalf("Auth is disabled in config, no token store to talk to")
		}
		info, minted, err := tm.FetchOrCreateCourseToken(context.Background(), course.ID)
		if err != nil {
			logger.Error.Fatalf("Failed to fetch token for course %d: %v", course.ID, err)
		}
		if minted {
			logger.Info.Printf("Minted token for course %q: %s", course.Name, info.Token)
		} else {
			logger.Info.Printf("Token for course %q: %s (requested %d times)", course.Name, info.Token, info.RequestCount)
		}
	case *revokeToken != 0:
		tm := service.Auth.TokenManager()
		if tm == nil {
			logger.Error.Fatalf("Auth is disabled in config, no token store to talk to")
		}
		if err := tm.RevokeCourseToken(context.Background(), *revokeToken); err != nil {
			logger.Error.Fatalf("Failed to revoke token for course %d: %v", *revokeToken, err)
		}
		logger.Info.Printf("Revoked token for course %d", *revokeToken)
	default:
		flag.Usage()
	}
}
