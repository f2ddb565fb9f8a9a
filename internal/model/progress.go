package model

import "time"

// swagger:model ObjectiveProgress
// ObjectiveProgress 学习者对单个目标的进度记录
type ObjectiveProgress struct {
	BaseModel
	UserID           uint       `gorm:"index:idx_progress_user_objective,unique;not null" json:"userId"`
	ObjectiveID      uint       `gorm:"index:idx_progress_user_objective,unique;not null" json:"objectiveId"`
	Completed        bool       `gorm:"default:false" json:"completed"`
	TimeSpentMinutes int        `gorm:"default:0" json:"timeSpentMinutes"`
	CompletedAt      *time.Time `json:"completedAt"`
}

func (ObjectiveProgress) TableName() string {
	return "objective_progress"
}
