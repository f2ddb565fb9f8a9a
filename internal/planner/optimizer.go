package planner

import (
	"math"
	"strings"
)

const (
	timeBufferFactor        = 1.3
	baseMinutesPerObjective = 60.0
)

// 基准资源占比
var baseResourceShares = map[string]float64{
	ResourceText:        0.25,
	ResourceVideo:       0.35,
	ResourceInteractive: 0.25,
	ResourceSimulation:  0.15,
}

// 学习风格 -> 资源权重表
var styleResourceWeights = map[string]map[string]float64{
	StyleVisual: {
		ResourceVideo:       1.5,
		ResourceSimulation:  1.2,
		ResourceInteractive: 1.0,
		ResourceText:        0.7,
	},
	StyleAuditory: {
		ResourceVideo:       1.4,
		ResourceText:        1.1,
		ResourceInteractive: 0.9,
		ResourceSimulation:  0.8,
	},
	StyleKinesthetic: {
		ResourceInteractive: 1.5,
		ResourceSimulation:  1.4,
		ResourceVideo:       0.8,
		ResourceText:        0.6,
	},
	StyleReading: {
		ResourceText:        1.6,
		ResourceInteractive: 0.9,
		ResourceSimulation:  0.8,
		ResourceVideo:       0.7,
	},
}

// 资源类型的替代形态
var resourceAlternatives = map[string]string{
	ResourceText:        "audio_narration",
	ResourceVideo:       "illustrated_transcript",
	ResourceInteractive: "guided_worksheet",
	ResourceSimulation:  "video_walkthrough",
}

// 学习风格 -> 自适应规则建议的资源倾斜方向
var styleResourceShift = map[string]string{
	StyleVisual:      ResourceVideo,
	StyleAuditory:    ResourceVideo,
	StyleKinesthetic: ResourceInteractive,
	StyleReading:     ResourceText,
	StyleMixed:       ResourceInteractive,
}

// OptimizePath 由画像、目标序列、进度与节奏合成个性化学习路径。
// 确定性：相同输入（含 PathID）必得相同输出。结构性无效输入在任何
// 计算开始前返回 ErrInvalidInput，绝不返回半成品路径。
func OptimizePath(in PathInput) (*LearningPath, error) {
	if in.Profile == nil || len(in.Objectives) == 0 || in.OptimalPacing <= 0 {
		return nil, ErrInvalidInput
	}

	progression := DeriveDifficultyProgression(in.Profile)
	if in.Progression != nil {
		progression = *in.Progression
	}

	style := strings.ToLower(in.Profile.LearningStyle)
	if !learningStyles[style] {
		style = StyleMixed
	}

	totalTime := int(math.Round(float64(len(in.Objectives)) * baseMinutesPerObjective / in.OptimalPacing * timeBufferFactor))

	path := &LearningPath{
		PathID:                     in.PathID,
		TotalEstimatedTime:         totalTime,
		DifficultyProgression:      progression,
		Checkpoints:                buildCheckpoints(in.Objectives, in.Progress, progression, in.OptimalPacing),
		ResourceAllocation:         allocateResources(style, in.AvailableResources),
		PacingAdjustment:           in.OptimalPacing,
		AssessmentStrategy:         buildAssessmentStrategy(progression),
		ReinforcementSchedule:      buildReinforcementSchedule(),
		AdaptivityRules:            buildAdaptivityRules(style),
		CollaborationOpportunities: findCollaborationOpportunities(in.Objectives),
		FallbackPaths:              buildFallbackPaths(in.Profile, style),
	}
	return path, nil
}

// buildCheckpoints 每个目标一个检查点，保持输入顺序。
// 预期难度 = 初始难度 + 序号 × 推进速率。
func buildCheckpoints(objectives []string, progress *Progress, progression DifficultyProgression, pacing float64) []Checkpoint {
	completed := map[string]bool{}
	if progress != nil {
		for _, id := range progress.CompletedObjectives {
			completed[id] = true
		}
	}

	perObjective := int(math.Round(baseMinutesPerObjective / pacing * timeBufferFactor))

	checkpoints := make([]Checkpoint, len(objectives))
	for i, objective := range objectives {
		difficulty := float64(progression.InitialDifficulty) + float64(i)*progression.ProgressionRate
		label := difficultyLabel(difficulty)

		checkpoints[i] = Checkpoint{
			Index:              i,
			Objective:          objective,
			ExpectedDifficulty: difficulty,
			DifficultyLabel:    label,
			EstimatedDuration:  perObjective,
			AssessmentType:     assessmentTypeFor(label),
			MasteryCriteria: MasteryCriteria{
				RequiredScore: progression.MasteryThreshold,
				RetryLimit:    3,
			},
			NextStep:  nextStepFor(i, len(objectives)),
			Completed: completed[objective],
		}
	}
	return checkpoints
}

func difficultyLabel(difficulty float64) string {
	switch {
	case difficulty < 2:
		return "beginner"
	case difficulty < 3.5:
		return "intermediate"
	default:
		return "advanced"
	}
}

func assessmentTypeFor(label string) string {
	switch label {
	case "beginner":
		return "formative_quiz"
	case "intermediate":
		return "applied_project"
	default:
		return "summative_assessment"
	}
}

// nextStepFor 按位置标记阶段：首个为引入，末尾为综合，其余为应用。
func nextStepFor(index, total int) string {
	switch {
	case index == 0:
		return "introduction"
	case index == total-1:
		return "synthesis"
	default:
		return "application"
	}
}

// allocateResources 基准占比按风格权重重排后归一化：
// 原始和超过 1.0 时所有值按总和等比缩减，保证占比和 ≤ 1.0。
func allocateResources(style string, available []string) map[string]ResourceShare {
	kinds := availableKinds(available)

	weights := styleResourceWeights[style]
	raw := make(map[string]float64, len(kinds))
	sum := 0.0
	for _, kind := range kinds {
		share := baseResourceShares[kind]
		if w, ok := weights[kind]; ok {
			share *= w
		}
		raw[kind] = share
		sum += share
	}
	if sum > 1.0 {
		for kind := range raw {
			raw[kind] /= sum
		}
	}

	ranked := rankByShare(raw)
	out := make(map[string]ResourceShare, len(raw))
	for kind, pct := range raw {
		out[kind] = ResourceShare{
			Percentage:  pct,
			Priority:    ranked[kind],
			Alternative: resourceAlternatives[kind],
		}
	}
	return out
}

// availableKinds 过滤到已知资源类型；为空时默认四类全开。
func availableKinds(available []string) []string {
	all := []string{ResourceText, ResourceVideo, ResourceInteractive, ResourceSimulation}
	if len(available) == 0 {
		return all
	}
	allowed := map[string]bool{}
	for _, kind := range available {
		allowed[strings.ToLower(kind)] = true
	}
	out := make([]string, 0, len(all))
	for _, kind := range all {
		if allowed[kind] {
			out = append(out, kind)
		}
	}
	if len(out) == 0 {
		return all
	}
	return out
}

// rankByShare 最高占比 high，次高 medium，其余 low。占比相同按类型名定序。
func rankByShare(shares map[string]float64) map[string]string {
	type entry struct {
		kind string
		pct  float64
	}
	entries := make([]entry, 0, len(shares))
	for kind, pct := range shares {
		entries = append(entries, entry{kind, pct})
	}
	for i := 0; i < len(entries); i++ {
		for j := i + 1; j < len(entries); j++ {
			if entries[j].pct > entries[i].pct ||
				(entries[j].pct == entries[i].pct && entries[j].kind < entries[i].kind) {
				entries[i], entries[j] = entries[j], entries[i]
			}
		}
	}

	out := make(map[string]string, len(entries))
	for i, e := range entries {
		switch i {
		case 0:
			out[e.kind] = "high"
		case 1:
			out[e.kind] = "medium"
		default:
			out[e.kind] = "low"
		}
	}
	return out
}

func buildAssessmentStrategy(progression DifficultyProgression) AssessmentStrategy {
	return AssessmentStrategy{
		Formative: FormativePlan{
			Frequency:     "every_checkpoint",
			Methods:       []string{"quick_quiz", "self_check", "exit_ticket"},
			FeedbackDelay: "immediate",
		},
		Summative: SummativePlan{
			Position:     "path_end",
			Methods:      []string{"cumulative_test", "applied_project"},
			PassingScore: progression.MasteryThreshold,
		},
		Diagnostic: DiagnosticPlan{
			Timing:          "before_start",
			Methods:         []string{"placement_quiz", "prior_knowledge_survey"},
			AdaptsPlacement: true,
		},
	}
}

// buildReinforcementSchedule 固定四阶段，第 0/1/7/30 天，活动集互不重叠。
func buildReinforcementSchedule() []ReinforcementStage {
	return []ReinforcementStage{
		{DayOffset: 0, Stage: "immediate", Activities: []string{"summary", "key_points", "quick_quiz"}},
		{DayOffset: 1, Stage: "short_term", Activities: []string{"review", "practice", "peer_discussion"}},
		{DayOffset: 7, Stage: "medium_term", Activities: []string{"application_project", "real_world_example", "teach_others"}},
		{DayOffset: 30, Stage: "long_term", Activities: []string{"comprehensive_review", "advanced_application", "reflection"}},
	}
}

// buildAdaptivityRules 静态规则表，仅作为建议输出，由外部投放循环执行。
func buildAdaptivityRules(style string) []AdaptivityRule {
	shift := styleResourceShift[style]
	if shift == "" {
		shift = ResourceInteractive
	}

	return []AdaptivityRule{
		{
			Trigger:          "low_engagement",
			Condition:        "engagement < 0.3",
			DifficultyAction: "decrease",
			PacingMultiplier: 0.8,
			ResourceShift:    shift,
		},
		{
			Trigger:          "high_difficulty",
			Condition:        "difficulty > 0.8",
			DifficultyAction: "decrease",
			PacingMultiplier: 0.7,
			ResourceShift:    shift,
		},
		{
			Trigger:          "rapid_completion",
			Condition:        "completion_time < 0.5 * expected",
			DifficultyAction: "increase",
			PacingMultiplier: 1.3,
			ResourceShift:    ResourceSimulation,
		},
		{
			Trigger:          "slow_progression",
			Condition:        "completion_time > 2.0 * expected",
			DifficultyAction: "maintain",
			PacingMultiplier: 0.6,
			ResourceShift:    shift,
		},
	}
}

// buildFallbackPaths 三个固定备选计划，按画像判定资格；可同时多个合格，
// 最终选择交给调用方。
func buildFallbackPaths(profile *LearnerProfile, style string) []FallbackPath {
	return []FallbackPath{
		{
			Name:        "accelerated",
			Description: "压缩基础内容，提前进入高阶目标",
			Eligible:    profile.KnowledgeLevel == KnowledgeAdvanced,
			Modifications: []string{
				"skip_introductory_checkpoints",
				"raise_initial_difficulty",
				"compress_review_schedule",
			},
		},
		{
			Name:        "remedial",
			Description: "补足前置知识，放缓难度推进",
			Eligible:    profile.KnowledgeLevel == KnowledgeBeginner,
			Modifications: []string{
				"add_prerequisite_checkpoints",
				"lower_progression_rate",
				"extend_time_estimates",
			},
		},
		{
			Name:        "alternative_modality",
			Description: "以视觉材料为主的替代呈现路径",
			Eligible:    style == StyleVisual,
			Modifications: []string{
				"swap_text_for_video",
				"add_visual_organizers",
				"diagram_first_sequencing",
			},
		},
	}
}
