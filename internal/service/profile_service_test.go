package service

import (
	"encoding/json"
	"testing"

	"edupath_backend/internal/model"
	"edupath_backend/internal/planner"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestToPlannerProfileMapsScalarFields(t *testing.T) {
	m := &model.LearnerProfile{
		UserID:           7,
		Age:              15,
		EducationLevel:   "secondary",
		KnowledgeLevel:   planner.KnowledgeIntermediate,
		LearningStyle:    planner.StyleVisual,
		Gifted:           true,
		Language:         "zh",
		SocialPreference: "group",
		TechnologyAccess: "standard",
	}

	p := ToPlannerProfile(m)
	require.NotNil(t, p)

	assert.Equal(t, 15, p.Age)
	assert.Equal(t, "secondary", p.EducationLevel)
	assert.Equal(t, planner.KnowledgeIntermediate, p.KnowledgeLevel)
	assert.Equal(t, planner.StyleVisual, p.LearningStyle)
	assert.True(t, p.Gifted)
	assert.Equal(t, "zh", p.Language)
	assert.Equal(t, "group", p.SocialPreference)
}

func TestToPlannerProfileDecodesJSONColumns(t *testing.T) {
	needs, err := json.Marshal([]string{"visual_impairment", "adhd"})
	require.NoError(t, err)
	// 偏好历史的键是学习风格词表，不是资源类型
	prefs, err := json.Marshal(map[string]float64{
		planner.StyleVisual:  0.8,
		planner.StyleReading: 0.2,
	})
	require.NoError(t, err)
	cog, err := json.Marshal(planner.CognitiveCharacteristics{
		PriorKnowledge:   0.6,
		WorkingMemory:    0.4,
		ProcessingSpeed:  1.2,
		AttentionDeficit: true,
	})
	require.NoError(t, err)

	m := &model.LearnerProfile{
		UserID:             1,
		AccessibilityNeeds: needs,
		ContentPreferences: prefs,
		Cognitive:          cog,
	}

	p := ToPlannerProfile(m)
	require.NotNil(t, p)

	assert.Equal(t, []string{"visual_impairment", "adhd"}, p.AccessibilityNeeds)
	assert.Equal(t, 0.8, p.ContentPreferences[planner.StyleVisual])
	assert.Equal(t, 0.6, p.Cognitive.PriorKnowledge)
	assert.True(t, p.Cognitive.AttentionDeficit)
}

// 偏好历史以风格词表为键时，未显式指定风格的画像由历史决定风格
func TestToPlannerProfilePreferenceHistoryDrivesStyle(t *testing.T) {
	prefs, err := json.Marshal(map[string]float64{
		planner.StyleVisual:   0.7,
		planner.StyleAuditory: 0.3,
	})
	require.NoError(t, err)

	m := &model.LearnerProfile{
		UserID:             5,
		Age:                14,
		EducationLevel:     "secondary",
		ContentPreferences: prefs,
	}

	p := ToPlannerProfile(m)
	eduCtx := planner.AnalyzeContext(nil, p)

	assert.Equal(t, planner.StyleVisual, eduCtx.LearningStyle)
}

func TestToPlannerProfileToleratesMalformedJSON(t *testing.T) {
	m := &model.LearnerProfile{
		UserID:             1,
		AccessibilityNeeds: json.RawMessage(`not-json`),
		Cognitive:          json.RawMessage(`{broken`),
	}

	p := ToPlannerProfile(m)
	require.NotNil(t, p)

	// 解析失败按未填写处理，引擎侧走默认值
	assert.Nil(t, p.AccessibilityNeeds)
	assert.Zero(t, p.Cognitive.PriorKnowledge)
}

func TestToPlannerProfileNil(t *testing.T) {
	assert.Nil(t, ToPlannerProfile(nil))
}

func TestToPlannerProfileFeedsContextAnalysis(t *testing.T) {
	cog, err := json.Marshal(planner.CognitiveCharacteristics{AttentionDeficit: true})
	require.NoError(t, err)

	m := &model.LearnerProfile{
		UserID:         3,
		Age:            10,
		EducationLevel: "primary",
		Cognitive:      cog,
	}

	p := ToPlannerProfile(m)
	eduCtx := planner.AnalyzeContext(nil, p)

	assert.Equal(t, planner.ContextK12, eduCtx.PrimaryContext)
}
