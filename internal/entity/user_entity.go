package entity

import (
	"time"

	"github.com/google/uuid"
)

type User struct {
	Id              uuid.UUID
	Name            string
	Email           string
	Goal            string // e.g. "strength", "hypertrophy", "endurance"
	ExperienceLevel string // "beginner", "intermediate", "advanced"
	BodyweightKg    *float64
	CreatedAt       time.Time
	UpdatedAt       *time.Time
}
