package mapper

import (
	"fitcoach-be/internal/entity"
	"fitcoach-be/internal/model"
)

type BenchmarkMapper struct{}

func NewBenchmarkMapper() *BenchmarkMapper {
	return &BenchmarkMapper{}
}

func (m *BenchmarkMapper) ToEntity(b *model.BenchmarkWOD) *entity.BenchmarkWOD {
	if b == nil {
		return nil
	}

	return &entity.BenchmarkWOD{
		Id:          b.Id,
		Name:        b.Name,
		Description: b.Description,
		Format:      b.Format,
	}
}

func (m *BenchmarkMapper) ToModel(b *entity.BenchmarkWOD) *model.BenchmarkWOD {
	if b == nil {
		return nil
	}

	return &model.BenchmarkWOD{
		Id:          b.Id,
		Name:        b.Name,
		Description: b.Description,
		Format:      b.Format,
	}
}

func (m *BenchmarkMapper) ResultToEntity(r *model.BenchmarkResult) *entity.BenchmarkResult {
	if r == nil {
		return nil
	}

	return &entity.BenchmarkResult{
		Id:                  r.Id,
		UserId:              r.UserId,
		BenchmarkId:         r.BenchmarkId,
		TimeSeconds:         r.TimeSeconds,
		Rounds:              r.Rounds,
		IsPB:                r.IsPB,
		PreviousBestSeconds: r.PreviousBestSeconds,
		RawTranscript:       r.RawTranscript,
		CreatedAt:           r.CreatedAt,
	}
}

func (m *BenchmarkMapper) ResultToModel(r *entity.BenchmarkResult) *model.BenchmarkResult {
	if r == nil {
		return nil
	}

	return &model.BenchmarkResult{
		Id:                  r.Id,
		UserId:              r.UserId,
		BenchmarkId:         r.BenchmarkId,
		TimeSeconds:         r.TimeSeconds,
		Rounds:              r.Rounds,
		IsPB:                r.IsPB,
		PreviousBestSeconds: r.PreviousBestSeconds,
		RawTranscript:       r.RawTranscript,
		CreatedAt:           r.CreatedAt,
	}
}
