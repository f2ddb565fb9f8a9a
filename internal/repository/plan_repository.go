package repository

import (
	"edupath_backend/internal/model"

	"gorm.io/gorm"
)

type PlanRepository struct {
	DB *gorm.DB
}

func NewPlanRepository(db *gorm.DB) *PlanRepository {
	return &PlanRepository{DB: db}
}

func (r *PlanRepository) Create(record *model.LearningPlanRecord) error {
	return r.DB.Create(record).Error
}

func (r *PlanRepository) FindByID(id string) (*model.LearningPlanRecord, error) {
	var record model.LearningPlanRecord
	err := r.DB.Where("id = ?", id).First(&record).Error
	return &record, err
}

// FindByUser 返回用户最近的规划快照，limit 控制历史深度
func (r *PlanRepository) FindByUser(userID uint, limit int) ([]model.LearningPlanRecord, error) {
	var records []model.LearningPlanRecord
	err := r.DB.Where("user_id = ?", userID).
		Order("created_at DESC").
		Limit(limit).
		Find(&records).Error
	return records, err
}

func (r *PlanRepository) Delete(id string) error {
	return r.DB.Where("id = ?", id).Delete(&model.LearningPlanRecord{}).Error
}
