package model

import "encoding/json"

// swagger:model LearnerProfile
// LearnerProfile 学习者画像，规划引擎的主要输入之一。
// 嵌套字段以 JSON 列存储，读取后由 service 层映射为引擎的纯数据结构。
type LearnerProfile struct {
	BaseModel
	UserID             uint            `gorm:"uniqueIndex;not null" json:"userId"`
	Age                int             `gorm:"default:0" json:"age"`
	EducationLevel     string          `gorm:"size:50" json:"educationLevel"` // primary / secondary / undergraduate / graduate / professional / vocational
	KnowledgeLevel     string          `gorm:"size:20;default:'beginner'" json:"knowledgeLevel"`
	LearningStyle      string          `gorm:"size:20" json:"learningStyle"`
	Gifted             bool            `gorm:"default:false" json:"gifted"`
	Language           string          `gorm:"size:10;default:'en'" json:"language"`
	Location           string          `gorm:"size:100" json:"location"`
	CulturalBackground string          `gorm:"size:100" json:"culturalBackground"`
	SocialPreference   string          `gorm:"size:20" json:"socialPreference"` // group / individual / mixed
	TechnologyAccess   string          `gorm:"size:20" json:"technologyAccess"` // limited / standard / advanced
	AccessibilityNeeds json.RawMessage `gorm:"type:json" json:"accessibilityNeeds"` // JSON: []string
	ContentPreferences json.RawMessage `gorm:"type:json" json:"contentPreferences"` // JSON: map[style]weight，行为偏好历史
	Cognitive          json.RawMessage `gorm:"type:json" json:"cognitive"`          // JSON: planner.CognitiveCharacteristics
}

func (LearnerProfile) TableName() string {
	return "learner_profiles"
}
