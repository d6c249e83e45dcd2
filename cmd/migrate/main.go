package main

import (
	"context"
	"flag"

	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"venturelink/internal/config"
	"venturelink/internal/dbmysql"
	"venturelink/internal/identity"
)

// Runs the schema migration and, with -seed, inserts a demo mentor and
// startup so the API can be exercised immediately.
func main() {
	seed := flag.Bool("seed", false, "insert demo accounts after migrating")
	flag.Parse()

	_ = godotenv.Load()
	cfg := config.Load()

	logger, err := zap.NewDevelopment()
	if err != nil {
		panic(err)
	}
	defer logger.Sync()

	db, err := dbmysql.NewMySQL(cfg)
	if err != nil {
		logger.Fatal("mysql connection failed", zap.Error(err))
	}

	if err := dbmysql.Migrate(db); err != nil {
		logger.Fatal("migration failed", zap.Error(err))
	}
	logger.Info("migration complete")

	if !*seed {
		return
	}

	ctx := context.Background()

	m := &dbmysql.Mentor{
		DisplayName: "Dana Velasquez",
		Available:   true,
		Expertise:   dbmysql.TagList{"go-to-market", "fundraising"},
		Industries:  dbmysql.TagList{"fintech", "healthtech"},
	}
	if err := db.WithContext(ctx).Create(m).Error; err != nil {
		logger.Fatal("seed mentor failed", zap.Error(err))
	}

	s := &dbmysql.Startup{DisplayName: "Acme Robotics"}
	if err := db.WithContext(ctx).Create(s).Error; err != nil {
		logger.Fatal("seed startup failed", zap.Error(err))
	}

	mentorHash, err := identity.HashPassword("mentor-demo")
	if err != nil {
		logger.Fatal("hash failed", zap.Error(err))
	}
	startupHash, err := identity.HashPassword("startup-demo")
	if err != nil {
		logger.Fatal("hash failed", zap.Error(err))
	}

	accounts := []*dbmysql.Account{
		{Email: "mentor@example.com", PasswordHash: mentorHash, Role: "mentor", MentorID: m.ID},
		{Email: "startup@example.com", PasswordHash: startupHash, Role: "startup", StartupID: s.ID},
	}
	for _, a := range accounts {
		if err := db.WithContext(ctx).Create(a).Error; err != nil {
			logger.Fatal("seed account failed", zap.Error(err))
		}
	}

	// Link profile rows back to their accounts.
	if err := db.WithContext(ctx).Model(m).Update("account_id", accounts[0].ID).Error; err != nil {
		logger.Fatal("link mentor account failed", zap.Error(err))
	}
	if err := db.WithContext(ctx).Model(s).Update("account_id", accounts[1].ID).Error; err != nil {
		logger.Fatal("link startup account failed", zap.Error(err))
	}

	logger.Info("seed complete",
		zap.Uint64("mentor_id", m.ID),
		zap.Uint64("startup_id", s.ID),
	)
}
