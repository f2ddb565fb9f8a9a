package repository

import (
	"edupath_backend/internal/model"

	"gorm.io/gorm"
)

type ObjectiveRepository struct {
	DB *gorm.DB
}

func NewObjectiveRepository(db *gorm.DB) *ObjectiveRepository {
	return &ObjectiveRepository{DB: db}
}

func (r *ObjectiveRepository) Create(objective *model.LearningObjective) error {
	return r.DB.Create(objective).Error
}

func (r *ObjectiveRepository) FindByID(id uint) (*model.LearningObjective, error) {
	var objective model.LearningObjective
	err := r.DB.First(&objective, id).Error
	return &objective, err
}

// FindBySubject 按科目返回目标，按 position 升序，规划时的目标顺序即此顺序
func (r *ObjectiveRepository) FindBySubject(subject string) ([]model.LearningObjective, error) {
	var objectives []model.LearningObjective
	err := r.DB.Where("subject = ?", subject).Order("position ASC").Find(&objectives).Error
	return objectives, err
}

func (r *ObjectiveRepository) List(page, limit int) ([]model.LearningObjective, int64, error) {
	var objectives []model.LearningObjective
	var total int64

	if err := r.DB.Model(&model.LearningObjective{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := r.DB.Order("subject ASC, position ASC").
		Offset((page - 1) * limit).Limit(limit).
		Find(&objectives).Error
	return objectives, total, err
}

func (r *ObjectiveRepository) Update(objective *model.LearningObjective) error {
	return r.DB.Save(objective).Error
}

func (r *ObjectiveRepository) Delete(id uint) error {
	return r.DB.Delete(&model.LearningObjective{}, id).Error
}
