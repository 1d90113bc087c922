package entity

import (
	"time"

	"github.com/google/uuid"
)

// ChatTurn is one side of a coach conversation exchange
type ChatTurn struct {
	Id        uuid.UUID
	UserId    uuid.UUID
	Role      string // "user" or "coach"
	Content   string
	Intent    string
	CreatedAt time.Time
}
