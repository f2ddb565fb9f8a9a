package planner

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validInput() PathInput {
	return PathInput{
		PathID:        "path-test-1",
		Profile:       &LearnerProfile{Age: 20, KnowledgeLevel: KnowledgeIntermediate},
		Objectives:    []string{"Explain recursion", "Apply recursion to trees", "Compare iterative solutions"},
		OptimalPacing: 1.0,
	}
}

func TestOptimizePathRejectsMalformedInput(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*PathInput)
	}{
		{"nil profile", func(in *PathInput) { in.Profile = nil }},
		{"empty objectives", func(in *PathInput) { in.Objectives = nil }},
		{"zero pacing", func(in *PathInput) { in.OptimalPacing = 0 }},
		{"negative pacing", func(in *PathInput) { in.OptimalPacing = -2 }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in := validInput()
			tt.mutate(&in)

			path, err := OptimizePath(in)
			assert.ErrorIs(t, err, ErrInvalidInput)
			assert.Nil(t, path, "no partial path on invalid input")
		})
	}
}

func TestCheckpointCountMatchesObjectives(t *testing.T) {
	for n := 1; n <= 8; n++ {
		objectives := make([]string, n)
		for i := range objectives {
			objectives[i] = fmt.Sprintf("objective %d", i)
		}

		in := validInput()
		in.Objectives = objectives
		path, err := OptimizePath(in)
		require.NoError(t, err)
		require.Len(t, path.Checkpoints, n)

		for i, cp := range path.Checkpoints {
			assert.Equal(t, i, cp.Index)
			assert.Equal(t, objectives[i], cp.Objective, "input order preserved")
		}
	}
}

func TestCheckpointDifficultyProgression(t *testing.T) {
	in := validInput()
	in.Progression = &DifficultyProgression{
		InitialDifficulty:   1,
		ProgressionRate:     1.0,
		MasteryThreshold:    0.85,
		ReviewFrequencyDays: 3,
	}

	path, err := OptimizePath(in)
	require.NoError(t, err)

	// 1 + i×1.0: 1 -> beginner, 2 -> intermediate, 3 -> intermediate(<3.5)
	assert.Equal(t, "beginner", path.Checkpoints[0].DifficultyLabel)
	assert.Equal(t, 1.0, path.Checkpoints[0].ExpectedDifficulty)
	assert.Equal(t, "intermediate", path.Checkpoints[1].DifficultyLabel)
	assert.Equal(t, "intermediate", path.Checkpoints[2].DifficultyLabel)

	for _, cp := range path.Checkpoints {
		assert.Equal(t, 0.85, cp.MasteryCriteria.RequiredScore)
	}
}

func TestNextStepTagsByPosition(t *testing.T) {
	in := validInput()
	path, err := OptimizePath(in)
	require.NoError(t, err)

	assert.Equal(t, "introduction", path.Checkpoints[0].NextStep)
	assert.Equal(t, "application", path.Checkpoints[1].NextStep)
	assert.Equal(t, "synthesis", path.Checkpoints[2].NextStep)

	in.Objectives = []string{"only one"}
	path, err = OptimizePath(in)
	require.NoError(t, err)
	assert.Equal(t, "introduction", path.Checkpoints[0].NextStep)
}

func TestTotalEstimatedTime(t *testing.T) {
	// round(2 × 60 / 1.0 × 1.3) = 156
	in := validInput()
	in.Objectives = []string{"Explain recursion", "Group discussion on ethics"}
	in.OptimalPacing = 1.0

	path, err := OptimizePath(in)
	require.NoError(t, err)
	assert.Equal(t, 156, path.TotalEstimatedTime)
	assert.Equal(t, 1.0, path.PacingAdjustment)
}

func TestResourceAllocationNormalized(t *testing.T) {
	styles := []string{StyleVisual, StyleAuditory, StyleKinesthetic, StyleReading, StyleMixed}

	for _, style := range styles {
		in := validInput()
		in.Profile.LearningStyle = style

		path, err := OptimizePath(in)
		require.NoError(t, err)

		sum := 0.0
		for kind, share := range path.ResourceAllocation {
			assert.GreaterOrEqual(t, share.Percentage, 0.0, "style=%s kind=%s", style, kind)
			assert.NotEmpty(t, share.Alternative)
			sum += share.Percentage
		}
		assert.LessOrEqual(t, sum, 1.0+1e-9, "style=%s", style)
	}
}

func TestResourceAllocationStyleWeighting(t *testing.T) {
	in := validInput()
	in.Profile.LearningStyle = StyleReading

	path, err := OptimizePath(in)
	require.NoError(t, err)

	text := path.ResourceAllocation[ResourceText]
	video := path.ResourceAllocation[ResourceVideo]
	assert.Greater(t, text.Percentage, video.Percentage)
	assert.Equal(t, "high", text.Priority)
}

func TestResourceAllocationRespectsAvailableKinds(t *testing.T) {
	in := validInput()
	in.AvailableResources = []string{ResourceText, ResourceVideo}

	path, err := OptimizePath(in)
	require.NoError(t, err)

	assert.Len(t, path.ResourceAllocation, 2)
	assert.Contains(t, path.ResourceAllocation, ResourceText)
	assert.Contains(t, path.ResourceAllocation, ResourceVideo)
}

func TestReinforcementScheduleFixedShape(t *testing.T) {
	path, err := OptimizePath(validInput())
	require.NoError(t, err)

	require.Len(t, path.ReinforcementSchedule, 4)

	wantOffsets := []int{0, 1, 7, 30}
	seen := map[string]bool{}
	for i, stage := range path.ReinforcementSchedule {
		assert.Equal(t, wantOffsets[i], stage.DayOffset)
		for _, activity := range stage.Activities {
			assert.False(t, seen[activity], "activity %q reused across stages", activity)
			seen[activity] = true
		}
	}
}

func TestAdaptivityRuleTable(t *testing.T) {
	path, err := OptimizePath(validInput())
	require.NoError(t, err)

	require.Len(t, path.AdaptivityRules, 4)

	byTrigger := map[string]AdaptivityRule{}
	for _, rule := range path.AdaptivityRules {
		byTrigger[rule.Trigger] = rule
		assert.Contains(t, []string{"increase", "decrease", "maintain"}, rule.DifficultyAction)
		assert.Greater(t, rule.PacingMultiplier, 0.0)
		assert.NotEmpty(t, rule.ResourceShift)
	}

	assert.Equal(t, "increase", byTrigger["rapid_completion"].DifficultyAction)
	assert.Equal(t, "decrease", byTrigger["high_difficulty"].DifficultyAction)
	assert.Contains(t, byTrigger["low_engagement"].Condition, "0.3")
	assert.Contains(t, byTrigger["slow_progression"].Condition, "2.0")
}

func TestCollaborationBelowThresholdExcluded(t *testing.T) {
	// "Group discussion on ethics" 命中 group+discussion = 0.6，未过 0.7 阈值
	in := validInput()
	in.Objectives = []string{"Explain recursion", "Group discussion on ethics"}

	path, err := OptimizePath(in)
	require.NoError(t, err)
	assert.Empty(t, path.CollaborationOpportunities)
}

func TestCollaborationAboveThresholdSurfaced(t *testing.T) {
	in := validInput()
	in.Objectives = []string{
		"Explain recursion",
		"Collaborative team project with peer discussion",
	}

	path, err := OptimizePath(in)
	require.NoError(t, err)
	require.Len(t, path.CollaborationOpportunities, 1)

	opp := path.CollaborationOpportunities[0]
	assert.Equal(t, 1, opp.CheckpointIndex)
	assert.Greater(t, opp.Score, 0.7)
	assert.Equal(t, 3, opp.GroupSizeMin) // discussion 优先于 project
	assert.Equal(t, 6, opp.GroupSizeMax)
	assert.NotEmpty(t, opp.SuggestedActivities)
	assert.NotEmpty(t, opp.Roles)
}

func TestFallbackEligibilityCanOverlap(t *testing.T) {
	// advanced + visual 同时命中 accelerated 与 alternative_modality
	in := validInput()
	in.Profile.KnowledgeLevel = KnowledgeAdvanced
	in.Profile.LearningStyle = StyleVisual

	path, err := OptimizePath(in)
	require.NoError(t, err)
	require.Len(t, path.FallbackPaths, 3)

	eligible := map[string]bool{}
	for _, fb := range path.FallbackPaths {
		eligible[fb.Name] = fb.Eligible
		assert.NotEmpty(t, fb.Modifications)
	}

	assert.True(t, eligible["accelerated"])
	assert.True(t, eligible["alternative_modality"])
	assert.False(t, eligible["remedial"])
}

func TestProgressMarksCompletedCheckpoints(t *testing.T) {
	in := validInput()
	in.Progress = &Progress{
		CompletedObjectives: []string{"Explain recursion"},
		TimeSpentMinutes:    40,
	}

	path, err := OptimizePath(in)
	require.NoError(t, err)

	assert.True(t, path.Checkpoints[0].Completed)
	assert.False(t, path.Checkpoints[1].Completed)
}

func TestOptimizePathDeterministic(t *testing.T) {
	in := validInput()
	first, err := OptimizePath(in)
	require.NoError(t, err)
	second, err := OptimizePath(in)
	require.NoError(t, err)

	assert.Equal(t, first, second)
	assert.Equal(t, "path-test-1", first.PathID)
}

func TestAssessmentStrategyShape(t *testing.T) {
	path, err := OptimizePath(validInput())
	require.NoError(t, err)

	s := path.AssessmentStrategy
	assert.Equal(t, "immediate", s.Formative.FeedbackDelay)
	assert.Equal(t, 0.85, s.Summative.PassingScore)
	assert.Equal(t, "before_start", s.Diagnostic.Timing)
	assert.True(t, s.Diagnostic.AdaptsPlacement)
}
