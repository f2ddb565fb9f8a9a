package service

import (
	"errors"

	"edupath_backend/internal/model"
	"edupath_backend/internal/repository"
	"edupath_backend/internal/util"

	"gorm.io/gorm"
)

type ObjectiveService struct {
	ObjectiveRepo *repository.ObjectiveRepository
}

func NewObjectiveService(objectiveRepo *repository.ObjectiveRepository) *ObjectiveService {
	return &ObjectiveService{ObjectiveRepo: objectiveRepo}
}

func (s *ObjectiveService) Create(objective *model.LearningObjective) error {
	return s.ObjectiveRepo.Create(objective)
}

func (s *ObjectiveService) GetByID(id uint) (*model.LearningObjective, error) {
	objective, err := s.ObjectiveRepo.FindByID(id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, util.ErrObjectiveNotFound
	}
	return objective, err
}

func (s *ObjectiveService) ListBySubject(subject string) ([]model.LearningObjective, error) {
	return s.ObjectiveRepo.FindBySubject(subject)
}

func (s *ObjectiveService) List(page, limit int) ([]model.LearningObjective, int64, error) {
	return s.ObjectiveRepo.List(page, limit)
}

func (s *ObjectiveService) Update(objective *model.LearningObjective) error {
	return s.ObjectiveRepo.Update(objective)
}

func (s *ObjectiveService) Delete(id uint) error {
	return s.ObjectiveRepo.Delete(id)
}
