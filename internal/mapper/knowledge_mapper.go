package mapper

import (
	"fitcoach-be/internal/entity"
	"fitcoach-be/internal/model"
)

type KnowledgeMapper struct{}

func NewKnowledgeMapper() *KnowledgeMapper {
	return &KnowledgeMapper{}
}

func (m *KnowledgeMapper) ToEntity(k *model.KnowledgeChunk) *entity.KnowledgeChunk {
	if k == nil {
		return nil
	}

	return &entity.KnowledgeChunk{
		Id:        k.Id,
		Partition: k.Partition,
		Title:     k.Title,
		Content:   k.Content,
		Category:  k.Category,
		CreatedAt: k.CreatedAt,
	}
}
