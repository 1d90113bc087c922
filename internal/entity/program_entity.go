package entity

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

// Program is a generated multi-week structured training program
type Program struct {
	Id          uuid.UUID
	UserId      uuid.UUID
	ProgramType string // "strength" or "running"
	Weeks       int
	Structure   json.RawMessage
	CreatedAt   time.Time
}

// IntakeResponse tracks a user's program questionnaire. Generation only
// starts once CompletedAt is set.
type IntakeResponse struct {
	Id          uuid.UUID
	UserId      uuid.UUID
	ProgramType string
	Answers     json.RawMessage
	NextField   string // the next question to ask while incomplete
	CompletedAt *time.Time
	CreatedAt   time.Time
}

func (i *IntakeResponse) IsComplete() bool {
	return i.CompletedAt != nil
}
