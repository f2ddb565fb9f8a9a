package model

// swagger:model LearningObjective
// LearningObjective 学习目标，按学科分组、Position 定序。
// 规划引擎只消费 Description 文本，顺序即路径检查点顺序。
type LearningObjective struct {
	BaseModel
	Subject     string `gorm:"size:100;index;not null" json:"subject"`
	Position    int    `gorm:"not null;default:0" json:"position"`
	Description string `gorm:"size:500;not null" json:"description"`
	CreatorID   uint   `gorm:"index" json:"creatorId"`
}

func (LearningObjective) TableName() string {
	return "learning_objectives"
}
