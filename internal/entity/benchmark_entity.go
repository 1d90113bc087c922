package entity

import (
	"time"

	"github.com/google/uuid"
)

// BenchmarkWOD is a named benchmark workout (Fran, Murph, ...)
type BenchmarkWOD struct {
	Id          uuid.UUID
	Name        string
	Description string
	Format      string // "for_time", "amrap", "emom"
}

// BenchmarkResult is one recorded attempt. Lower TimeSeconds is better;
// PreviousBestSeconds keeps the superseded record instead of destroying it.
type BenchmarkResult struct {
	Id                  uuid.UUID
	UserId              uuid.UUID
	BenchmarkId         uuid.UUID
	TimeSeconds         int
	Rounds              *int
	IsPB                bool
	PreviousBestSeconds *int
	RawTranscript       string
	CreatedAt           time.Time
}
