package handlers

import (
	"context"
	"log"
	"os"
	"testing"
	"time"

	"astra/internal/db"

	"github.com/gin-gonic/gin"
	tcpostgres "github.com/testcontainers/testcontainers-go/modules/postgres"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func TestMain(m *testing.M) {
	gin.SetMode(gin.TestMode)

	ctx := context.Background()

	container, err := tcpostgres.Run(ctx, "postgres:16-alpine",
		tcpostgres.WithDatabase("astra_test"),
		tcpostgres.WithUsername("astra"),
		tcpostgres.WithPassword("astra"),
		tcpostgres.BasicWaitStrategies(),
	)
	if err != nil {
		log.Fatalf("start postgres container: %v", err)
	}

	dsn, err := container.ConnectionString(ctx, "sslmode=disable")
	if err != nil {
		log.Fatalf("connection string: %v", err)
	}

	db.DB, err = gorm.Open(postgres.Open(dsn), &gorm.Config{
		TranslateError: true,
		Logger:         logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		log.Fatalf("open gorm: %v", err)
	}
	if err := db.Migrate(db.DB); err != nil {
		log.Fatalf("migrate: %v", err)
	}

	code := m.Run()

	stopCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	_ = container.Terminate(stopCtx)
	os.Exit(code)
}

func resetTables(t *testing.T) {
	t.Helper()
	err := db.DB.Exec(`TRUNCATE accounts, profiles, skills, badges, hubs, posts, comments,
		helpful_votes, mentorship_requests, profile_skills, profile_badges,
		hub_members, hub_moderators RESTART IDENTITY CASCADE`).Error
	if err != nil {
		t.Fatalf("truncate: %v", err)
	}
}
