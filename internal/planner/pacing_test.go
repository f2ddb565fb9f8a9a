package planner

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAgeFactorBrackets(t *testing.T) {
	tests := []struct {
		age  int
		want float64
	}{
		{5, 0.6},
		{7, 0.6}, // 上界不含
		{8, 0.8}, // 下界含
		{11, 0.8},
		{12, 1.0},
		{15, 1.0},
		{16, 1.2},
		{19, 1.2},
		{20, 1.4},
		{45, 1.4},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, ageFactor(tt.age), "age=%d", tt.age)
	}
}

func TestAttentionSpanCappedAt45(t *testing.T) {
	// 20 × 1.4 × 2.0 = 56，封顶到 45
	profile := &LearnerProfile{
		Age:       30,
		Cognitive: CognitiveCharacteristics{AttentionSpan: 2.0},
	}
	assert.Equal(t, 45.0, AttentionSpanMinutes(profile))
}

func TestAttentionDeficitFactor(t *testing.T) {
	base := &LearnerProfile{Age: 14}
	adhd := &LearnerProfile{Age: 14, Cognitive: CognitiveCharacteristics{AttentionDeficit: true}}

	assert.InDelta(t, 20.0, AttentionSpanMinutes(base), 1e-9)
	assert.InDelta(t, 14.0, AttentionSpanMinutes(adhd), 1e-9)
}

func TestOptimalPacingScenario(t *testing.T) {
	// age 10, 无 ADHD, attention 1.0, processing 1.0:
	// span = min(20×0.8×1.0×1.0, 45) = 16; pacing = 0.8×16×1.0 = 12.8
	profile := &LearnerProfile{
		Age: 10,
		Cognitive: CognitiveCharacteristics{
			AttentionSpan:   1.0,
			ProcessingSpeed: 1.0,
		},
	}

	assert.InDelta(t, 16.0, AttentionSpanMinutes(profile), 1e-9)
	assert.InDelta(t, 12.8, ComputeOptimalPacing(profile), 1e-9)
}

func TestOptimalPacingDefaults(t *testing.T) {
	// 未填写的认知字段按 1.0 处理
	assert.InDelta(t, 12.8, ComputeOptimalPacing(&LearnerProfile{Age: 10}), 1e-9)
	assert.Greater(t, ComputeOptimalPacing(nil), 0.0)
}

func TestDeriveDifficultyProgression(t *testing.T) {
	tests := []struct {
		level       string
		wantInitial int
		wantRate    float64
		wantReview  int
	}{
		{KnowledgeBeginner, 1, 0.2, 2},
		{KnowledgeIntermediate, 2, 0.3, 3},
		{KnowledgeAdvanced, 3, 0.5, 5},
		{"", 2, 0.3, 3},       // 缺失按中级处理
		{"wizard", 2, 0.3, 3}, // 未知值同样走默认
	}

	for _, tt := range tests {
		p := DeriveDifficultyProgression(&LearnerProfile{KnowledgeLevel: tt.level})
		assert.Equal(t, tt.wantInitial, p.InitialDifficulty, "level=%q", tt.level)
		assert.Equal(t, tt.wantRate, p.ProgressionRate, "level=%q", tt.level)
		assert.Equal(t, 0.85, p.MasteryThreshold, "level=%q", tt.level)
		assert.Equal(t, tt.wantReview, p.ReviewFrequencyDays, "level=%q", tt.level)
	}
}
