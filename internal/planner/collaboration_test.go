package planner

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCollaborationScore(t *testing.T) {
	tests := []struct {
		objective string
		want      float64
	}{
		{"Explain recursion", 0.0},
		{"Group discussion on ethics", 0.6},
		{"Team project", 0.3},
		{"Collaborative peer discussion in a group", 0.9},
		// 五个关键词全部命中时 1.5 封顶到 1.0
		{"Collaborative team group peer discussion", 1.0},
		// 大小写不敏感
		{"GROUP Discussion", 0.6},
	}

	for _, tt := range tests {
		assert.InDelta(t, tt.want, CollaborationScore(tt.objective), 1e-9, "objective=%q", tt.objective)
	}
}

func TestCollaborationShapeByKeyword(t *testing.T) {
	objectives := []string{
		"Peer discussion about collaborative team design", // discussion -> 3..6
		"Collaborative group team project build",          // project -> 4..8
		"Peer team collaborative practice",                // 其它 -> 2..4
	}

	opps := findCollaborationOpportunities(objectives)
	require.Len(t, opps, 3)

	assert.Equal(t, 3, opps[0].GroupSizeMin)
	assert.Equal(t, 6, opps[0].GroupSizeMax)
	assert.Contains(t, opps[0].Roles, "facilitator")

	assert.Equal(t, 4, opps[1].GroupSizeMin)
	assert.Equal(t, 8, opps[1].GroupSizeMax)
	assert.Contains(t, opps[1].Roles, "coordinator")

	assert.Equal(t, 2, opps[2].GroupSizeMin)
	assert.Equal(t, 4, opps[2].GroupSizeMax)
}

func TestCollaborationThresholdIsExclusive(t *testing.T) {
	// 0.6 未超过 0.7 阈值，不入选
	opps := findCollaborationOpportunities([]string{"group discussion"})
	assert.Empty(t, opps)
}
