package mapper

import (
	"encoding/json"

	"gorm.io/datatypes"

	"fitcoach-be/internal/entity"
	"fitcoach-be/internal/model"
)

type ProgramMapper struct{}

func NewProgramMapper() *ProgramMapper {
	return &ProgramMapper{}
}

func (m *ProgramMapper) ToEntity(p *model.Program) *entity.Program {
	if p == nil {
		return nil
	}

	return &entity.Program{
		Id:          p.Id,
		UserId:      p.UserId,
		ProgramType: p.ProgramType,
		Weeks:       p.Weeks,
		Structure:   json.RawMessage(p.Structure),
		CreatedAt:   p.CreatedAt,
	}
}

func (m *ProgramMapper) ToModel(p *entity.Program) *model.Program {
	if p == nil {
		return nil
	}

	return &model.Program{
		Id:          p.Id,
		UserId:      p.UserId,
		ProgramType: p.ProgramType,
		Weeks:       p.Weeks,
		Structure:   datatypes.JSON(p.Structure),
		CreatedAt:   p.CreatedAt,
	}
}

func (m *ProgramMapper) IntakeToEntity(i *model.IntakeResponse) *entity.IntakeResponse {
	if i == nil {
		return nil
	}

	return &entity.IntakeResponse{
		Id:          i.Id,
		UserId:      i.UserId,
		ProgramType: i.ProgramType,
		Answers:     json.RawMessage(i.Answers),
		NextField:   i.NextField,
		CompletedAt: i.CompletedAt,
		CreatedAt:   i.CreatedAt,
	}
}

func (m *ProgramMapper) IntakeToModel(i *entity.IntakeResponse) *model.IntakeResponse {
	if i == nil {
		return nil
	}

	return &model.IntakeResponse{
		Id:          i.Id,
		UserId:      i.UserId,
		ProgramType: i.ProgramType,
		Answers:     datatypes.JSON(i.Answers),
		NextField:   i.NextField,
		CompletedAt: i.CompletedAt,
		CreatedAt:   i.CreatedAt,
	}
}
