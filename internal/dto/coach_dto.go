package dto

import (
	"time"

	"github.com/google/uuid"
)

type SendCoachMessageRequest struct {
	Message       string     `json:"message" validate:"required,min=1,max=2000"`
	WorkoutId     *uuid.UUID `json:"workout_id,omitempty"`
	LoggingMethod string     `json:"logging_method,omitempty" validate:"omitempty,oneof=chat voice"`
}

type SendCoachMessageResponse struct {
	Reply   string                 `json:"reply"`
	Intent  string                 `json:"intent"`
	Action  string                 `json:"action,omitempty"`
	Payload map[string]interface{} `json:"payload,omitempty"`
}

type ClassifyMessageRequest struct {
	Message string `json:"message" validate:"required,min=1,max=2000"`
}

type ClassifyMessageResponse struct {
	Intent      string  `json:"intent"`
	Confidence  float64 `json:"confidence"`
	UsedPattern bool    `json:"used_pattern"`
}

type ChatTurnResponse struct {
	Role      string    `json:"role"`
	Content   string    `json:"content"`
	Intent    string    `json:"intent,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}
