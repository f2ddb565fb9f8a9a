package model

// 资源类型，与规划引擎的 resourceAllocation 键一致
const (
	ResourceKindText        = "text"
	ResourceKindVideo       = "video"
	ResourceKindInteractive = "interactive"
	ResourceKindSimulation  = "simulation"
)

// swagger:model ResourceItem
// ResourceItem 学习资源。投放层按路径的资源配比从这里选材。
type ResourceItem struct {
	UUIDBase
	Title           string `gorm:"size:255;not null" json:"title"`
	Subject         string `gorm:"size:100;index" json:"subject"`
	Kind            string `gorm:"size:20;index;not null" json:"kind"` // text / video / interactive / simulation
	URL             string `gorm:"size:512" json:"url"`
	Format          string `gorm:"size:50" json:"format"`
	DurationMinutes int    `gorm:"default:0" json:"durationMinutes"` // 视频资源由 ffmpeg 探测写入
	Difficulty      int    `gorm:"default:1" json:"difficulty"`      // 1..5
	UploaderID      uint   `gorm:"index" json:"uploaderId"`
}

func (ResourceItem) TableName() string {
	return "resource_items"
}
