package repository

import (
	"edupath_backend/internal/model"

	"gorm.io/gorm"
)

type ProfileRepository struct {
	DB *gorm.DB
}

func NewProfileRepository(db *gorm.DB) *ProfileRepository {
	return &ProfileRepository{DB: db}
}

func (r *ProfileRepository) Create(profile *model.LearnerProfile) error {
	return r.DB.Create(profile).Error
}

func (r *ProfileRepository) FindByID(id uint) (*model.LearnerProfile, error) {
	var profile model.LearnerProfile
	err := r.DB.First(&profile, id).Error
	return &profile, err
}

func (r *ProfileRepository) FindByUserID(userID uint) (*model.LearnerProfile, error) {
	var profile model.LearnerProfile
	err := r.DB.Where("user_id = ?", userID).First(&profile).Error
	return &profile, err
}

func (r *ProfileRepository) Update(profile *model.LearnerProfile) error {
	return r.DB.Save(profile).Error
}

func (r *ProfileRepository) List(page, limit int) ([]model.LearnerProfile, int64, error) {
	var profiles []model.LearnerProfile
	var total int64

	if err := r.DB.Model(&model.LearnerProfile{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := r.DB.Offset((page - 1) * limit).Limit(limit).Find(&profiles).Error
	return profiles, total, err
}

func (r *ProfileRepository) Delete(id uint) error {
	return r.DB.Delete(&model.LearnerProfile{}, id).Error
}
