package repository

import (
	"edupath_backend/internal/model"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type ProgressRepository struct {
	DB *gorm.DB
}

func NewProgressRepository(db *gorm.DB) *ProgressRepository {
	return &ProgressRepository{DB: db}
}

// Upsert 以 (user_id, objective_id) 为键写入进度，存在则更新
func (r *ProgressRepository) Upsert(progress *model.ObjectiveProgress) error {
	return r.DB.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "user_id"}, {Name: "objective_id"}},
		DoUpdates: clause.AssignmentColumns([]string{"completed", "time_spent_minutes", "completed_at", "updated_at"}),
	}).Create(progress).Error
}

func (r *ProgressRepository) FindByUser(userID uint) ([]model.ObjectiveProgress, error) {
	var records []model.ObjectiveProgress
	err := r.DB.Where("user_id = ?", userID).Find(&records).Error
	return records, err
}

func (r *ProgressRepository) FindByUserAndObjective(userID, objectiveID uint) (*model.ObjectiveProgress, error) {
	var record model.ObjectiveProgress
	err := r.DB.Where("user_id = ? AND objective_id = ?", userID, objectiveID).First(&record).Error
	return &record, err
}

func (r *ProgressRepository) Delete(userID, objectiveID uint) error {
	return r.DB.Where("user_id = ? AND objective_id = ?", userID, objectiveID).
		Delete(&model.ObjectiveProgress{}).Error
}
