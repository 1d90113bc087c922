package mapper

import (
	"fitcoach-be/internal/entity"
	"fitcoach-be/internal/model"
)

type ChatTurnMapper struct{}

func NewChatTurnMapper() *ChatTurnMapper {
	return &ChatTurnMapper{}
}

func (m *ChatTurnMapper) ToEntity(c *model.ChatTurn) *entity.ChatTurn {
	if c == nil {
		return nil
	}

	return &entity.ChatTurn{
		Id:        c.Id,
		UserId:    c.UserId,
		Role:      c.Role,
		Content:   c.Content,
		Intent:    c.Intent,
		CreatedAt: c.CreatedAt,
	}
}

func (m *ChatTurnMapper) ToModel(c *entity.ChatTurn) *model.ChatTurn {
	if c == nil {
		return nil
	}

	return &model.ChatTurn{
		Id:        c.Id,
		UserId:    c.UserId,
		Role:      c.Role,
		Content:   c.Content,
		Intent:    c.Intent,
		CreatedAt: c.CreatedAt,
	}
}
