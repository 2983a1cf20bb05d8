package main

import (
	"fmt"
	"os"
	"time"

	"go.uber.org/zap"

	"medroster/backend/config"
	"medroster/backend/internal/model"
	"medroster/backend/pkg/database"
	applogger "medroster/backend/pkg/logger"
)

// Seeds a demo roster: four people, four shift types, and a roster for the
// current month with all shift types enabled. Idempotent.
func main() {
	cfg, err := config.Load("")
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(1)
	}

	logger, err := applogger.NewLogger(&cfg.Log)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	db, err := database.NewDB(&cfg.Database, logger)
	if err != nil {
		logger.Fatal("database connection failed", zap.Error(err))
	}

	sqlDB, err := db.DB()
	if err != nil {
		logger.Fatal("failed to obtain underlying sql.DB", zap.Error(err))
	}
	if err := database.RunMigrations(sqlDB, logger); err != nil {
		logger.Fatal("database migration failed", zap.Error(err))
	}

	people := []model.Person{
		{Code: "HA", Name: "HA", Active: true},
		{Code: "BU", Name: "BU", Active: true},
		{Code: "PU", Name: "PU", Active: true},
		{Code: "DN", Name: "DN", Active: true},
	}
	for i := range people {
		if err := db.Where(model.Person{Code: people[i].Code}).
			FirstOrCreate(&people[i]).Error; err != nil {
			logger.Fatal("failed to seed person", zap.String("code", people[i].Code), zap.Error(err))
		}
	}

	shifts := []model.ShiftType{
		{Code: "WARD", Name: "Ward", Category: "day", Weight: 1.0},
		{Code: "OPD", Name: "OPD", Category: "day", Weight: 1.0},
		{Code: "CLINIC", Name: "Clinic", Category: "day", Weight: 1.0},
		{Code: "NIGHT", Name: "Night", Category: "night", Weight: 2.0},
	}
	for i := range shifts {
		if err := db.Where(model.ShiftType{Code: shifts[i].Code}).
			FirstOrCreate(&shifts[i]).Error; err != nil {
			logger.Fatal("failed to seed shift type", zap.String("code", shifts[i].Code), zap.Error(err))
		}
	}

	now := time.Now()
	month := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.UTC)
	name := "Demo Roster"
	roster := model.Roster{Month: month, Name: &name}
	if err := db.Where("month = ?", month.Format(model.DateLayout)).
		FirstOrCreate(&roster).Error; err != nil {
		logger.Fatal("failed to seed roster", zap.Error(err))
	}

	for i, st := range shifts {
		rst := model.RosterShiftType{
			RosterID:    roster.ID,
			ShiftTypeID: st.ID,
			Position:    uint(i),
		}
		if err := db.Where(model.RosterShiftType{RosterID: roster.ID, ShiftTypeID: st.ID}).
			FirstOrCreate(&rst).Error; err != nil {
			logger.Fatal("failed to enable shift type", zap.String("code", st.Code), zap.Error(err))
		}
	}

	logger.Info("demo data seeded",
		zap.Uint("roster_id", roster.ID),
		zap.String("month", month.Format(model.DateLayout)),
	)
}
