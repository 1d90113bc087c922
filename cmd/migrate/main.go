package main

import (
	"log"
	"os"

	"fitcoach-be/internal/model"
	"fitcoach-be/pkg/database"

	"github.com/joho/godotenv"
)

func main() {
	// 1. Load Environment Variables
	if err := godotenv.Load(); err != nil {
		log.Println("Info: No .env file found, using system env")
	}

	dsn := os.Getenv("DB_CONNECTION_STRING")
	if dsn == "" {
		log.Fatal("Error: DB_CONNECTION_STRING is not set")
	}

	// 2. Connect to Database using existing GORM helpers
	db, err := database.NewGormDBFromDSN(dsn)
	if err != nil {
		log.Fatal("Error: Failed to connect to database:", err)
	}

	log.Println("Starting Authoritative GORM Migration...")

	// 3. Pre-Migration: Extensions (Things GORM AutoMigrate doesn't do)
	log.Println("Step 1: Setting up Extensions...")

	setupSQL := []string{
		`CREATE EXTENSION IF NOT EXISTS pgcrypto;`,
		`CREATE EXTENSION IF NOT EXISTS "uuid-ossp";`,
		`CREATE EXTENSION IF NOT EXISTS vector;`,
	}

	for _, sql := range setupSQL {
		if err := db.Exec(sql).Error; err != nil {
			log.Printf("Warn: Failed to execute setup SQL: %v. Continuing...", err)
		}
	}

	// 4. AutoMigrate All Models (The Core Task)
	log.Println("Step 2: Running AutoMigrate...")

	models := []interface{}{
		&model.User{},
		&model.Exercise{},
		&model.Workout{},
		&model.LoggedSet{},
		&model.BenchmarkWOD{},
		&model.BenchmarkResult{},
		&model.Program{},
		&model.IntakeResponse{},
		&model.ChatTurn{},
		&model.KnowledgeChunk{},
	}

	if err := db.AutoMigrate(models...); err != nil {
		log.Fatalf("Error: AutoMigrate failed: %v", err)
	}

	// 5. Post-Migration: Indexes the models can't express
	log.Println("Step 3: Creating Indexes...")

	postMigrationSQL := []string{
		// Cosine-distance index for partition-scoped knowledge retrieval
		`CREATE INDEX IF NOT EXISTS idx_knowledge_chunks_embedding
		 ON knowledge_chunks USING ivfflat (embedding vector_cosine_ops) WITH (lists = 100);`,

		// One open workout per user is enforced at lookup time; this keeps it fast.
		`CREATE INDEX IF NOT EXISTS idx_workouts_user_open ON workouts (user_id) WHERE completed_at IS NULL;`,

		// PR check scans a user's history per exercise.
		`CREATE INDEX IF NOT EXISTS idx_logged_sets_user_exercise ON logged_sets (user_id, exercise_id);`,

		// Benchmark best lookups and chat history windows.
		`CREATE INDEX IF NOT EXISTS idx_benchmark_results_user_wod ON benchmark_results (user_id, benchmark_id);`,
		`CREATE INDEX IF NOT EXISTS idx_chat_turns_user_created ON chat_turns (user_id, created_at DESC);`,
	}

	for _, sql := range postMigrationSQL {
		if err := db.Exec(sql).Error; err != nil {
			log.Printf("Warn: Failed to execute post-migration SQL: %v", err)
		}
	}

	log.Println("✅ Success: Database migration completed successfully via GORM.")
}
