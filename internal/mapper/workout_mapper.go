package mapper

import (
	"fitcoach-be/internal/entity"
	"fitcoach-be/internal/model"
)

type WorkoutMapper struct{}

func NewWorkoutMapper() *WorkoutMapper {
	return &WorkoutMapper{}
}

func (m *WorkoutMapper) ToEntity(w *model.Workout) *entity.Workout {
	if w == nil {
		return nil
	}

	return &entity.Workout{
		Id:          w.Id,
		UserId:      w.UserId,
		Title:       w.Title,
		StartedAt:   w.StartedAt,
		CompletedAt: w.CompletedAt,
	}
}

func (m *WorkoutMapper) ToModel(w *entity.Workout) *model.Workout {
	if w == nil {
		return nil
	}

	return &model.Workout{
		Id:          w.Id,
		UserId:      w.UserId,
		Title:       w.Title,
		StartedAt:   w.StartedAt,
		CompletedAt: w.CompletedAt,
	}
}

type LoggedSetMapper struct{}

func NewLoggedSetMapper() *LoggedSetMapper {
	return &LoggedSetMapper{}
}

func (m *LoggedSetMapper) ToEntity(s *model.LoggedSet) *entity.LoggedSet {
	if s == nil {
		return nil
	}

	return &entity.LoggedSet{
		Id:            s.Id,
		UserId:        s.UserId,
		WorkoutId:     s.WorkoutId,
		ExerciseId:    s.ExerciseId,
		Weight:        s.Weight,
		WeightUnit:    s.WeightUnit,
		Reps:          s.Reps,
		RPE:           s.RPE,
		SetNumber:     s.SetNumber,
		Estimated1RM:  s.Estimated1RM,
		IsPR:          s.IsPR,
		LoggingMethod: s.LoggingMethod,
		RawTranscript: s.RawTranscript,
		Confidence:    s.Confidence,
		CreatedAt:     s.CreatedAt,
	}
}

func (m *LoggedSetMapper) ToModel(s *entity.LoggedSet) *model.LoggedSet {
	if s == nil {
		return nil
	}

	return &model.LoggedSet{
		Id:            s.Id,
		UserId:        s.UserId,
		WorkoutId:     s.WorkoutId,
		ExerciseId:    s.ExerciseId,
		Weight:        s.Weight,
		WeightUnit:    s.WeightUnit,
		Reps:          s.Reps,
		RPE:           s.RPE,
		SetNumber:     s.SetNumber,
		Estimated1RM:  s.Estimated1RM,
		IsPR:          s.IsPR,
		LoggingMethod: s.LoggingMethod,
		RawTranscript: s.RawTranscript,
		Confidence:    s.Confidence,
		CreatedAt:     s.CreatedAt,
	}
}
