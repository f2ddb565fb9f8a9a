package planner

// 主要教育场景
const (
	ContextK12          = "k12"
	ContextUniversity   = "university"
	ContextProfessional = "professional"
	ContextVocational   = "vocational"
)

// 次要教育场景（可叠加）
const (
	ContextSpecialNeeds    = "special_needs"
	ContextGiftedTalented  = "gifted_talented"
	ContextELL             = "english_language_learner"
	ContextRemoteLearning  = "remote_learning"
	ContextBlendedLearning = "blended_learning"
)

// 学习风格
const (
	StyleVisual      = "visual"
	StyleAuditory    = "auditory"
	StyleKinesthetic = "kinesthetic"
	StyleReading     = "reading"
	StyleMixed       = "mixed"
)

// 资源类型
const (
	ResourceText        = "text"
	ResourceVideo       = "video"
	ResourceInteractive = "interactive"
	ResourceSimulation  = "simulation"
)

// 无障碍需求类别
const (
	NeedVisual    = "visual"
	NeedHearing   = "hearing"
	NeedMotor     = "motor"
	NeedCognitive = "cognitive"
)

// 知识水平
const (
	KnowledgeBeginner     = "beginner"
	KnowledgeIntermediate = "intermediate"
	KnowledgeAdvanced     = "advanced"
)

// CognitiveCharacteristics 学习者认知特征。0 值视为未填写，
// 计算时使用文档化的默认值。
type CognitiveCharacteristics struct {
	PriorKnowledge   float64 `json:"priorKnowledge"`   // [0,1], 默认 0.5
	WorkingMemory    float64 `json:"workingMemory"`    // [0,1], 默认 0.5
	ProcessingSpeed  float64 `json:"processingSpeed"`  // 节奏乘数, 默认 1.0；负荷因子默认 0.5
	AttentionSpan    float64 `json:"attentionSpan"`    // 注意力乘数, 默认 1.0
	AttentionDeficit bool    `json:"attentionDeficit"` // ADHD 等注意力缺陷标记
}

// LearnerProfile 规划输入的学习者画像，纯数据，不携带任何存储语义。
type LearnerProfile struct {
	Age                int                      `json:"age"`
	EducationLevel     string                   `json:"educationLevel"`
	KnowledgeLevel     string                   `json:"knowledgeLevel"`
	LearningStyle      string                   `json:"learningStyle"`
	Gifted             bool                     `json:"gifted"`
	Language           string                   `json:"language"`
	Location           string                   `json:"location"`
	CulturalBackground string                   `json:"culturalBackground"`
	SocialPreference   string                   `json:"socialPreference"`
	TechnologyAccess   string                   `json:"technologyAccess"`
	AccessibilityNeeds []string                 `json:"accessibilityNeeds"`
	ContentPreferences map[string]float64       `json:"contentPreferences"` // 行为偏好历史: 风格 -> 权重
	Cognitive          CognitiveCharacteristics `json:"cognitive"`
}

// CognitiveFactors 认知负荷四因子，全部限制在 [0,1]。
type CognitiveFactors struct {
	Complexity      float64 `json:"complexity"`
	PriorKnowledge  float64 `json:"priorKnowledge"`
	WorkingMemory   float64 `json:"workingMemory"`
	ProcessingSpeed float64 `json:"processingSpeed"`
}

// CognitiveLoad 认知负荷评估结果
type CognitiveLoad struct {
	Level           string           `json:"level"` // low | medium | high
	Factors         CognitiveFactors `json:"factors"`
	Recommendations []string         `json:"recommendations"`
}

// AccessibilityProfile 无障碍需求评估结果
type AccessibilityProfile struct {
	Primary             []string `json:"primary"`
	Severity            string   `json:"severity"` // none | mild | moderate | severe
	AssistiveTechnology []string `json:"assistiveTechnology"`
	Accommodations      []string `json:"accommodations"`
}

// EducationalContext 上下文分析的完整输出
type EducationalContext struct {
	PrimaryContext      string               `json:"primaryContext"`
	SecondaryContexts   []string             `json:"secondaryContexts"`
	LearningStyle       string               `json:"learningStyle"`
	CognitiveLoad       CognitiveLoad        `json:"cognitiveLoad"`
	AccessibilityNeeds  AccessibilityProfile `json:"accessibilityNeeds"`
	SocialContext       string               `json:"socialContext"`
	TechnologyLevel     string               `json:"technologyLevel"`
	LanguagePreferences []string             `json:"languagePreferences"`
	CulturalContext     string               `json:"culturalContext"`
}

// Progress 学习进度快照（来自外部进度服务）
type Progress struct {
	CompletedObjectives []string `json:"completedObjectives"`
	TimeSpentMinutes    int      `json:"timeSpentMinutes"`
}

// DifficultyProgression 难度推进参数
type DifficultyProgression struct {
	InitialDifficulty   int     `json:"initialDifficulty"` // 1..5
	ProgressionRate     float64 `json:"progressionRate"`
	MasteryThreshold    float64 `json:"masteryThreshold"` // 固定 0.85
	ReviewFrequencyDays int     `json:"reviewFrequencyDays"`
}

// MasteryCriteria 检查点掌握标准
type MasteryCriteria struct {
	RequiredScore float64 `json:"requiredScore"`
	RetryLimit    int     `json:"retryLimit"`
}

// Checkpoint 路径检查点，每个学习目标一个
type Checkpoint struct {
	Index              int             `json:"index"`
	Objective          string          `json:"objective"`
	ExpectedDifficulty float64         `json:"expectedDifficulty"`
	DifficultyLabel    string          `json:"difficultyLabel"` // beginner | intermediate | advanced
	EstimatedDuration  int             `json:"estimatedDuration"`
	AssessmentType     string          `json:"assessmentType"`
	MasteryCriteria    MasteryCriteria `json:"masteryCriteria"`
	NextStep           string          `json:"nextStep"` // introduction | application | synthesis
	Completed          bool            `json:"completed"`
}

// ResourceShare 单一资源类型的分配
type ResourceShare struct {
	Percentage  float64 `json:"percentage"`
	Priority    string  `json:"priority"` // high | medium | low
	Alternative string  `json:"alternative"`
}

// FormativePlan 形成性评估子计划
type FormativePlan struct {
	Frequency     string   `json:"frequency"`
	Methods       []string `json:"methods"`
	FeedbackDelay string   `json:"feedbackDelay"`
}

// SummativePlan 总结性评估子计划
type SummativePlan struct {
	Position     string   `json:"position"`
	Methods      []string `json:"methods"`
	PassingScore float64  `json:"passingScore"`
}

// DiagnosticPlan 诊断性评估子计划
type DiagnosticPlan struct {
	Timing          string   `json:"timing"`
	Methods         []string `json:"methods"`
	AdaptsPlacement bool     `json:"adaptsPlacement"`
}

// AssessmentStrategy 评估策略
type AssessmentStrategy struct {
	Formative  FormativePlan  `json:"formative"`
	Summative  SummativePlan  `json:"summative"`
	Diagnostic DiagnosticPlan `json:"diagnostic"`
}

// ReinforcementStage 巩固阶段，固定 4 条（第 0/1/7/30 天）
type ReinforcementStage struct {
	DayOffset  int      `json:"dayOffset"`
	Stage      string   `json:"stage"`
	Activities []string `json:"activities"`
}

// AdaptivityRule 静态触发 -> 调整规则，由外部投放循环执行
type AdaptivityRule struct {
	Trigger          string  `json:"trigger"`
	Condition        string  `json:"condition"`
	DifficultyAction string  `json:"difficultyAction"` // increase | decrease | maintain
	PacingMultiplier float64 `json:"pacingMultiplier"`
	ResourceShift    string  `json:"resourceShift"`
}

// CollaborationOpportunity 协作机会（得分 > 0.7 的检查点）
type CollaborationOpportunity struct {
	CheckpointIndex     int      `json:"checkpointIndex"`
	Objective           string   `json:"objective"`
	Score               float64  `json:"score"`
	SuggestedActivities []string `json:"suggestedActivities"`
	GroupSizeMin        int      `json:"groupSizeMin"`
	GroupSizeMax        int      `json:"groupSizeMax"`
	Roles               []string `json:"roles"`
}

// FallbackPath 备选路径。三个固定计划全部返回，Eligible 标记由画像判定，
// 最终选择权在调用方。
type FallbackPath struct {
	Name          string   `json:"name"`
	Description   string   `json:"description"`
	Eligible      bool     `json:"eligible"`
	Modifications []string `json:"modifications"`
}

// LearningPath 个性化学习路径，整体重算、从不原地修改
type LearningPath struct {
	PathID                     string                     `json:"pathId"`
	TotalEstimatedTime         int                        `json:"totalEstimatedTime"` // 分钟
	DifficultyProgression      DifficultyProgression      `json:"difficultyProgression"`
	Checkpoints                []Checkpoint               `json:"checkpoints"`
	ResourceAllocation         map[string]ResourceShare   `json:"resourceAllocation"`
	PacingAdjustment           float64                    `json:"pacingAdjustment"`
	AssessmentStrategy         AssessmentStrategy         `json:"assessmentStrategy"`
	ReinforcementSchedule      []ReinforcementStage       `json:"reinforcementSchedule"`
	AdaptivityRules            []AdaptivityRule           `json:"adaptivityRules"`
	CollaborationOpportunities []CollaborationOpportunity `json:"collaborationOpportunities"`
	FallbackPaths              []FallbackPath             `json:"fallbackPaths"`
}

// PathInput 路径优化的全部输入。PathID 由调用方提供，
// 引擎本身不产生随机性，相同输入必得相同输出。
type PathInput struct {
	PathID             string
	Profile            *LearnerProfile
	Objectives         []string
	Progress           *Progress
	AvailableResources []string
	OptimalPacing      float64
	Progression        *DifficultyProgression
}
