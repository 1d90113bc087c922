package entity

import (
	"time"

	"github.com/google/uuid"
)

type Exercise struct {
	Id        uuid.UUID
	Name      string
	BodyPart  string
	Equipment string
	Synonyms  []string
	CreatedAt time.Time
}
