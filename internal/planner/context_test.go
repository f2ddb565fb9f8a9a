package planner

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolvePrimaryContextPrecedence(t *testing.T) {
	profile := &LearnerProfile{EducationLevel: "primary"}

	// 显式信号优先于结构推断与画像映射
	ctx := AnalyzeContext(map[string]string{
		SignalContext:     "university",
		SignalInstitution: "school",
	}, profile)
	assert.Equal(t, ContextUniversity, ctx.PrimaryContext)

	// 无显式信号时结构推断优先于画像映射
	ctx = AnalyzeContext(map[string]string{
		SignalInstitution: "workplace",
	}, profile)
	assert.Equal(t, ContextProfessional, ctx.PrimaryContext)

	// 仅有画像时按教育阶段映射
	ctx = AnalyzeContext(nil, &LearnerProfile{EducationLevel: "undergraduate"})
	assert.Equal(t, ContextUniversity, ctx.PrimaryContext)

	// 全部缺失时默认 K12
	ctx = AnalyzeContext(nil, nil)
	assert.Equal(t, ContextK12, ctx.PrimaryContext)

	// 无法识别的显式信号不短路后续推导
	ctx = AnalyzeContext(map[string]string{
		SignalContext:     "spaceship",
		SignalInstitution: "university",
	}, profile)
	assert.Equal(t, ContextUniversity, ctx.PrimaryContext)
}

func TestResolveLearningStyle(t *testing.T) {
	tests := []struct {
		name    string
		signals map[string]string
		profile *LearnerProfile
		want    string
	}{
		{
			name:    "explicit signal wins",
			signals: map[string]string{SignalLearningStyle: "kinesthetic"},
			profile: &LearnerProfile{LearningStyle: StyleVisual},
			want:    StyleKinesthetic,
		},
		{
			name:    "profile preference next",
			profile: &LearnerProfile{LearningStyle: StyleReading},
			want:    StyleReading,
		},
		{
			name: "highest weighted history entry",
			profile: &LearnerProfile{
				ContentPreferences: map[string]float64{
					StyleVisual:   0.3,
					StyleAuditory: 0.6,
				},
			},
			want: StyleAuditory,
		},
		{
			name:    "empty history falls back to mixed",
			profile: &LearnerProfile{},
			want:    StyleMixed,
		},
		{
			name: "unknown history keys ignored",
			profile: &LearnerProfile{
				ContentPreferences: map[string]float64{"podcast": 0.9},
			},
			want: StyleMixed,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx := AnalyzeContext(tt.signals, tt.profile)
			assert.Equal(t, tt.want, ctx.LearningStyle)
		})
	}
}

func TestCognitiveLoadLevels(t *testing.T) {
	tests := []struct {
		name      string
		signals   map[string]string
		cognitive CognitiveCharacteristics
		wantLevel string
	}{
		{
			name:      "all defaults average 0.5 is medium",
			wantLevel: "medium",
		},
		{
			name:      "low average",
			signals:   map[string]string{SignalComplexity: "0.1"},
			cognitive: CognitiveCharacteristics{PriorKnowledge: 0.2, WorkingMemory: 0.3, ProcessingSpeed: 0.2},
			wantLevel: "low",
		},
		{
			name:      "high average",
			signals:   map[string]string{SignalComplexity: "0.9"},
			cognitive: CognitiveCharacteristics{PriorKnowledge: 0.8, WorkingMemory: 0.7, ProcessingSpeed: 0.9},
			wantLevel: "high",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx := AnalyzeContext(tt.signals, &LearnerProfile{Cognitive: tt.cognitive})
			assert.Equal(t, tt.wantLevel, ctx.CognitiveLoad.Level)
		})
	}
}

func TestCognitiveFactorsClamped(t *testing.T) {
	ctx := AnalyzeContext(
		map[string]string{SignalComplexity: "3.5"},
		&LearnerProfile{Cognitive: CognitiveCharacteristics{
			PriorKnowledge:  -2,
			WorkingMemory:   1.8,
			ProcessingSpeed: 0.4,
		}},
	)

	f := ctx.CognitiveLoad.Factors
	assert.Equal(t, 1.0, f.Complexity)
	assert.Equal(t, 0.0, f.PriorKnowledge)
	assert.Equal(t, 1.0, f.WorkingMemory)
	assert.Equal(t, 0.4, f.ProcessingSpeed)
}

func TestCognitiveRecommendationsFireIndependently(t *testing.T) {
	ctx := AnalyzeContext(
		map[string]string{SignalComplexity: "0.9"},
		&LearnerProfile{Cognitive: CognitiveCharacteristics{
			PriorKnowledge: 0.1,
			WorkingMemory:  0.2,
		}},
	)

	recs := ctx.CognitiveLoad.Recommendations
	assert.Contains(t, recs, "reduce complexity")
	assert.Contains(t, recs, "chunk content")
	assert.Contains(t, recs, "add background material")

	// 无触发条件时不产生建议
	ctx = AnalyzeContext(nil, &LearnerProfile{})
	assert.Empty(t, ctx.CognitiveLoad.Recommendations)
}

func TestAccessibilitySeverityBuckets(t *testing.T) {
	tests := []struct {
		needs []string
		want  string
	}{
		{nil, "none"},
		{[]string{NeedVisual}, "mild"},
		{[]string{NeedVisual, NeedHearing}, "mild"},
		{[]string{NeedVisual, NeedHearing, NeedMotor}, "moderate"},
		{[]string{NeedVisual, NeedHearing, NeedMotor, NeedCognitive}, "moderate"},
	}

	for _, tt := range tests {
		ctx := AnalyzeContext(nil, &LearnerProfile{AccessibilityNeeds: tt.needs})
		assert.Equal(t, tt.want, ctx.AccessibilityNeeds.Severity, "needs=%v", tt.needs)
	}
}

func TestAccessibilityTablesDeduplicated(t *testing.T) {
	// visual 与 cognitive 的辅助技术都含 screen_reader，合并后只保留一份
	ctx := AnalyzeContext(nil, &LearnerProfile{
		AccessibilityNeeds: []string{NeedVisual, NeedCognitive},
	})

	tech := ctx.AccessibilityNeeds.AssistiveTechnology
	count := 0
	for _, v := range tech {
		if v == "screen_reader" {
			count++
		}
	}
	assert.Equal(t, 1, count)

	// 场景: visual+hearing+motor -> moderate，技术并集去重
	ctx = AnalyzeContext(nil, &LearnerProfile{
		AccessibilityNeeds: []string{NeedVisual, NeedHearing, NeedMotor},
	})
	require.Equal(t, "moderate", ctx.AccessibilityNeeds.Severity)

	seen := map[string]bool{}
	for _, v := range ctx.AccessibilityNeeds.AssistiveTechnology {
		assert.False(t, seen[v], "duplicate assistive technology %q", v)
		seen[v] = true
	}
	assert.Contains(t, ctx.AccessibilityNeeds.AssistiveTechnology, "screen_reader")
	assert.Contains(t, ctx.AccessibilityNeeds.AssistiveTechnology, "captioning_display")
	assert.Contains(t, ctx.AccessibilityNeeds.AssistiveTechnology, "switch_access")
}

func TestAccessibilityUnknownNeedsFiltered(t *testing.T) {
	ctx := AnalyzeContext(nil, &LearnerProfile{
		AccessibilityNeeds: []string{"visual", "telepathy", "visual", "  MOTOR "},
	})

	assert.Equal(t, []string{NeedVisual, NeedMotor}, ctx.AccessibilityNeeds.Primary)
}

func TestSecondaryContextsDerivedIndependently(t *testing.T) {
	ctx := AnalyzeContext(
		map[string]string{SignalDeliveryMode: "remote"},
		&LearnerProfile{
			AccessibilityNeeds: []string{NeedHearing},
			Gifted:             true,
			Language:           "es",
		},
	)

	assert.ElementsMatch(t, []string{
		ContextSpecialNeeds,
		ContextGiftedTalented,
		ContextELL,
		ContextRemoteLearning,
	}, ctx.SecondaryContexts)

	// 英语母语者不会被标记为 ELL
	ctx = AnalyzeContext(nil, &LearnerProfile{Language: "en"})
	assert.NotContains(t, ctx.SecondaryContexts, ContextELL)
}

func TestAnalyzeContextIdempotent(t *testing.T) {
	signals := map[string]string{
		SignalContext:      "professional",
		SignalComplexity:   "0.8",
		SignalDeliveryMode: "blended",
	}
	profile := &LearnerProfile{
		Age:                28,
		EducationLevel:     "professional",
		LearningStyle:      StyleVisual,
		Language:           "fr",
		AccessibilityNeeds: []string{NeedCognitive},
		ContentPreferences: map[string]float64{StyleVisual: 0.7, StyleReading: 0.2},
		Cognitive:          CognitiveCharacteristics{PriorKnowledge: 0.6, WorkingMemory: 0.3},
	}

	first := AnalyzeContext(signals, profile)
	second := AnalyzeContext(signals, profile)
	assert.Equal(t, first, second)
}

func TestContextDescriptiveDefaults(t *testing.T) {
	ctx := AnalyzeContext(nil, nil)

	assert.Equal(t, "mixed", ctx.SocialContext)
	assert.Equal(t, "standard", ctx.TechnologyLevel)
	assert.Equal(t, []string{"en"}, ctx.LanguagePreferences)
	assert.Equal(t, "general", ctx.CulturalContext)

	ctx = AnalyzeContext(nil, &LearnerProfile{Language: "zh"})
	assert.Equal(t, []string{"zh", "en"}, ctx.LanguagePreferences)
}
