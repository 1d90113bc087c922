package dto

import (
	"time"

	"github.com/google/uuid"
)

type UserProfileResponse struct {
	Id              uuid.UUID `json:"id"`
	Name            string    `json:"name"`
	Email           string    `json:"email"`
	Goal            string    `json:"goal,omitempty"`
	ExperienceLevel string    `json:"experience_level,omitempty"`
	BodyweightKg    *float64  `json:"bodyweight_kg,omitempty"`
	CreatedAt       time.Time `json:"created_at"`
}

type UpdateProfileRequest struct {
	Name            string   `json:"name" validate:"omitempty,min=1,max=100"`
	Goal            string   `json:"goal" validate:"omitempty,oneof=strength hypertrophy endurance general_fitness weight_loss"`
	ExperienceLevel string   `json:"experience_level" validate:"omitempty,oneof=beginner intermediate advanced"`
	BodyweightKg    *float64 `json:"bodyweight_kg" validate:"omitempty,gt=20,lt=400"`
}

type ProgramResponse struct {
	Id          uuid.UUID   `json:"id"`
	ProgramType string      `json:"program_type"`
	Weeks       int         `json:"weeks"`
	Structure   interface{} `json:"structure"`
	CreatedAt   time.Time   `json:"created_at"`
}
