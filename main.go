package main

import (
	"os"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"

	"fittrack/internal/logging"
	"fittrack/internal/repositories"
	"fittrack/internal/services"
	"fittrack/internal/ui"
)

func main() {
	// --- Configuration ---
	// Set up Viper to read configuration from environment variables,
	// falling back to the defaults below.
	viper.SetDefault("FITTRACK_DB_PATH", "fitness_tracker.db")
	viper.SetDefault("FITTRACK_LOG_FILE", "fittrack.log")
	viper.SetDefault("FITTRACK_LOG_LEVEL", "info")
	viper.AutomaticEnv() // Load environment variables

	dbPath := viper.GetString("FITTRACK_DB_PATH")
	logFile := viper.GetString("FITTRACK_LOG_FILE")
	logLevel := viper.GetString("FITTRACK_LOG_LEVEL")

	// --- Logging ---
	logging.Setup(logging.SetupParams{
		LogFileName: logFile,
		LogLevel:    logLevel,
	})

	// --- Open Store ---
	// Opens the single local database file and idempotently creates the
	// schema. The application assumes it is the only process using the file.
	db, err := repositories.OpenDB(dbPath)
	if err != nil {
		logrus.Fatalf("Failed to open database: %v", err)
	}
	logrus.Infof("Database ready at %s", dbPath)

	// --- Initialize Repositories ---
	userRepo := repositories.NewGORMUserRepository(db)
	logRepo := repositories.NewGORMExerciseLogRepository(db)
	goalRepo := repositories.NewGORMGoalRepository(db)

	// --- Initialize Services ---
	authService := services.NewAuthService(userRepo)
	workoutService := services.NewWorkoutService(logRepo)
	goalService := services.NewGoalService(goalRepo)

	// --- Dashboard Clock ---
	// Recurring date/time refresh; purely cosmetic, no store dependency.
	clock := ui.NewClock(time.Second, func(t time.Time) {
		logrus.Debugf("clock tick: %s", t.Format("2006-01-02 15:04:05"))
	})
	clock.Start()
	defer clock.Stop()

	// --- Run Shell ---
	shell := ui.NewShell(os.Stdin, os.Stdout, authService, workoutService, goalService)
	shell.Run()

	logrus.Info("Fitness tracker stopped")
}
