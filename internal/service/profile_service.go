package service

import (
	"encoding/json"
	"errors"

	"edupath_backend/internal/model"
	"edupath_backend/internal/planner"
	"edupath_backend/internal/repository"
	"edupath_backend/internal/util"

	"gorm.io/gorm"
)

type ProfileService struct {
	ProfileRepo *repository.ProfileRepository
}

func NewProfileService(profileRepo *repository.ProfileRepository) *ProfileService {
	return &ProfileService{ProfileRepo: profileRepo}
}

func (s *ProfileService) Create(profile *model.LearnerProfile) error {
	return s.ProfileRepo.Create(profile)
}

func (s *ProfileService) GetByUserID(userID uint) (*model.LearnerProfile, error) {
	profile, err := s.ProfileRepo.FindByUserID(userID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, util.ErrProfileNotFound
	}
	return profile, err
}

func (s *ProfileService) List(page, limit int) ([]model.LearnerProfile, int64, error) {
	return s.ProfileRepo.List(page, limit)
}

func (s *ProfileService) Update(profile *model.LearnerProfile) error {
	return s.ProfileRepo.Update(profile)
}

func (s *ProfileService) Delete(id uint) error {
	return s.ProfileRepo.Delete(id)
}

// ToPlannerProfile 将存储画像映射为规划引擎的纯数据画像。
// JSON 列解析失败时按未填写处理，引擎侧会落到文档化的默认值。
func ToPlannerProfile(m *model.LearnerProfile) *planner.LearnerProfile {
	if m == nil {
		return nil
	}

	p := &planner.LearnerProfile{
		Age:                m.Age,
		EducationLevel:     m.EducationLevel,
		KnowledgeLevel:     m.KnowledgeLevel,
		LearningStyle:      m.LearningStyle,
		Gifted:             m.Gifted,
		Language:           m.Language,
		Location:           m.Location,
		CulturalBackground: m.CulturalBackground,
		SocialPreference:   m.SocialPreference,
		TechnologyAccess:   m.TechnologyAccess,
	}

	if len(m.AccessibilityNeeds) > 0 {
		var needs []string
		if err := json.Unmarshal(m.AccessibilityNeeds, &needs); err == nil {
			p.AccessibilityNeeds = needs
		}
	}

	if len(m.ContentPreferences) > 0 {
		var prefs map[string]float64
		if err := json.Unmarshal(m.ContentPreferences, &prefs); err == nil {
			p.ContentPreferences = prefs
		}
	}

	if len(m.Cognitive) > 0 {
		var cog planner.CognitiveCharacteristics
		if err := json.Unmarshal(m.Cognitive, &cog); err == nil {
			p.Cognitive = cog
		}
	}

	return p
}
