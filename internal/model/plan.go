package model

import "encoding/json"

// swagger:model LearningPlanRecord
// LearningPlanRecord 一次规划的持久化快照。路径整体重算、从不原地修改，
// 同一学习者可保留多份历史记录。
type LearningPlanRecord struct {
	UUIDBase
	UserID         uint            `gorm:"index;not null" json:"userId"`
	Subject        string          `gorm:"size:100;index" json:"subject"`
	ObjectiveCount int             `gorm:"default:0" json:"objectiveCount"`
	OptimalPacing  float64         `gorm:"default:0" json:"optimalPacing"`
	Context        json.RawMessage `gorm:"type:json" json:"context"` // JSON: planner.EducationalContext
	Path           json.RawMessage `gorm:"type:json" json:"path"`    // JSON: planner.LearningPath
}

func (LearningPlanRecord) TableName() string {
	return "learning_plan_records"
}
