package planner

import "math"

const (
	maxAttentionSpanMinutes = 45.0
	baseAttentionMinutes    = 20.0
	adhdAttentionFactor     = 0.7
	masteryThreshold        = 0.85
)

// ageFactor 年龄分档步进函数，下界含、上界不含。
func ageFactor(age int) float64 {
	switch {
	case age < 8:
		return 0.6
	case age < 12:
		return 0.8
	case age < 16:
		return 1.0
	case age < 20:
		return 1.2
	default:
		return 1.4
	}
}

// AttentionSpanMinutes 估算有效注意力时长（分钟），封顶 45。
func AttentionSpanMinutes(profile *LearnerProfile) float64 {
	if profile == nil {
		profile = &LearnerProfile{}
	}
	attention := defaultFactor(profile.Cognitive.AttentionSpan, 1.0)
	adhd := 1.0
	if profile.Cognitive.AttentionDeficit {
		adhd = adhdAttentionFactor
	}
	span := baseAttentionMinutes * ageFactor(profile.Age) * attention * adhd
	return math.Min(span, maxAttentionSpanMinutes)
}

// ComputeOptimalPacing 最优节奏 = 年龄系数 × 注意力时长 × 认知处理速度。
func ComputeOptimalPacing(profile *LearnerProfile) float64 {
	if profile == nil {
		profile = &LearnerProfile{}
	}
	speed := defaultFactor(profile.Cognitive.ProcessingSpeed, 1.0)
	return ageFactor(profile.Age) * AttentionSpanMinutes(profile) * speed
}

// DeriveDifficultyProgression 按知识水平推导难度推进参数。
// 掌握阈值固定 0.85；复习间隔取 {2,3,5} 天。
func DeriveDifficultyProgression(profile *LearnerProfile) DifficultyProgression {
	level := KnowledgeIntermediate
	if profile != nil {
		switch profile.KnowledgeLevel {
		case KnowledgeBeginner, KnowledgeIntermediate, KnowledgeAdvanced:
			level = profile.KnowledgeLevel
		}
	}

	switch level {
	case KnowledgeBeginner:
		return DifficultyProgression{
			InitialDifficulty:   1,
			ProgressionRate:     0.2,
			MasteryThreshold:    masteryThreshold,
			ReviewFrequencyDays: 2,
		}
	case KnowledgeAdvanced:
		return DifficultyProgression{
			InitialDifficulty:   3,
			ProgressionRate:     0.5,
			MasteryThreshold:    masteryThreshold,
			ReviewFrequencyDays: 5,
		}
	default:
		return DifficultyProgression{
			InitialDifficulty:   2,
			ProgressionRate:     0.3,
			MasteryThreshold:    masteryThreshold,
			ReviewFrequencyDays: 3,
		}
	}
}
