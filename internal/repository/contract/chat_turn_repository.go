package contract

import (
	"context"

	"fitcoach-be/internal/entity"
	"fitcoach-be/internal/repository/specification"

	"github.com/google/uuid"
)

type ChatTurnRepository interface {
	Create(ctx context.Context, turn *entity.ChatTurn) error
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.ChatTurn, error)
	// FindRecent returns the user's latest turns, newest first.
	FindRecent(ctx context.Context, userId uuid.UUID, limit int) ([]*entity.ChatTurn, error)
}
