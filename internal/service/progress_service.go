package service

import (
	"errors"
	"time"

	"edupath_backend/internal/model"
	"edupath_backend/internal/repository"
	"edupath_backend/internal/util"

	"gorm.io/gorm"
)

type ProgressService struct {
	ProgressRepo  *repository.ProgressRepository
	ObjectiveRepo *repository.ObjectiveRepository
}

func NewProgressService(progressRepo *repository.ProgressRepository, objectiveRepo *repository.ObjectiveRepository) *ProgressService {
	return &ProgressService{
		ProgressRepo:  progressRepo,
		ObjectiveRepo: objectiveRepo,
	}
}

// Record 写入一条目标进度，目标不存在时拒绝
func (s *ProgressService) Record(userID, objectiveID uint, completed bool, timeSpentMinutes int) (*model.ObjectiveProgress, error) {
	if _, err := s.ObjectiveRepo.FindByID(objectiveID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, util.ErrObjectiveNotFound
		}
		return nil, err
	}

	record := &model.ObjectiveProgress{
		UserID:           userID,
		ObjectiveID:      objectiveID,
		Completed:        completed,
		TimeSpentMinutes: timeSpentMinutes,
	}
	if completed {
		now := time.Now()
		record.CompletedAt = &now
	}

	if err := s.ProgressRepo.Upsert(record); err != nil {
		return nil, err
	}
	return record, nil
}

func (s *ProgressService) ListByUser(userID uint) ([]model.ObjectiveProgress, error) {
	return s.ProgressRepo.FindByUser(userID)
}
