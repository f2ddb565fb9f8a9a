package repository

import (
	"edupath_backend/internal/model"

	"gorm.io/gorm"
)

type ResourceRepository struct {
	DB *gorm.DB
}

func NewResourceRepository(db *gorm.DB) *ResourceRepository {
	return &ResourceRepository{DB: db}
}

func (r *ResourceRepository) Create(item *model.ResourceItem) error {
	return r.DB.Create(item).Error
}

func (r *ResourceRepository) FindByID(id string) (*model.ResourceItem, error) {
	var item model.ResourceItem
	err := r.DB.Where("id = ?", id).First(&item).Error
	return &item, err
}

func (r *ResourceRepository) FindBySubjectAndKind(subject, kind string) ([]model.ResourceItem, error) {
	var items []model.ResourceItem
	err := r.DB.Where("subject = ? AND kind = ?", subject, kind).Find(&items).Error
	return items, err
}

// DistinctKinds 返回某学科下实际存在的资源类型，作为规划时的可用资源集合
func (r *ResourceRepository) DistinctKinds(subject string) ([]string, error) {
	var kinds []string
	err := r.DB.Model(&model.ResourceItem{}).
		Where("subject = ?", subject).
		Distinct().
		Pluck("kind", &kinds).Error
	return kinds, err
}

func (r *ResourceRepository) List(page, limit int) ([]model.ResourceItem, int64, error) {
	var items []model.ResourceItem
	var total int64

	if err := r.DB.Model(&model.ResourceItem{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := r.DB.Offset((page - 1) * limit).Limit(limit).Find(&items).Error
	return items, total, err
}

func (r *ResourceRepository) Delete(id string) error {
	return r.DB.Where("id = ?", id).Delete(&model.ResourceItem{}).Error
}
