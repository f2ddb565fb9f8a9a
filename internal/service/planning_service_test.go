package service

import (
	"encoding/json"
	"testing"

	"edupath_backend/internal/model"
	"edupath_backend/internal/planner"
	"edupath_backend/internal/util"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCanViewPlanOwnerOnly(t *testing.T) {
	tests := []struct {
		name      string
		requester *util.Claims
		ownerID   uint
		want      bool
	}{
		{"本人可见", &util.Claims{UserID: 7, Role: model.Student}, 7, true},
		{"他人不可见", &util.Claims{UserID: 8, Role: model.Student}, 7, false},
		{"教师不越权", &util.Claims{UserID: 9, Role: model.Teacher}, 7, false},
		{"管理员可见", &util.Claims{UserID: 1, Role: model.Admin}, 7, true},
		{"无凭证不可见", nil, 7, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, canViewPlan(tt.requester, tt.ownerID))
		})
	}
}

func TestDecodePlanRecordRoundTrip(t *testing.T) {
	eduCtx := planner.EducationalContext{
		PrimaryContext: planner.ContextK12,
		LearningStyle:  planner.StyleVisual,
	}
	path := planner.LearningPath{
		PathID:             "11111111-2222-3333-4444-555555555555",
		TotalEstimatedTime: 156,
	}

	ctxJSON, err := json.Marshal(eduCtx)
	require.NoError(t, err)
	pathJSON, err := json.Marshal(path)
	require.NoError(t, err)

	record := &model.LearningPlanRecord{
		UserID:        7,
		Subject:       "ethics",
		OptimalPacing: 12.8,
		Context:       ctxJSON,
		Path:          pathJSON,
	}
	record.ID = path.PathID

	result, err := decodePlanRecord(record)
	require.NoError(t, err)

	assert.Equal(t, path.PathID, result.PlanID)
	assert.Equal(t, "ethics", result.Subject)
	assert.Equal(t, 12.8, result.OptimalPacing)
	assert.Equal(t, planner.ContextK12, result.Context.PrimaryContext)
	assert.Equal(t, 156, result.Path.TotalEstimatedTime)
}

func TestDecodePlanRecordRejectsCorruptSnapshot(t *testing.T) {
	record := &model.LearningPlanRecord{
		Context: json.RawMessage(`{broken`),
		Path:    json.RawMessage(`{}`),
	}

	_, err := decodePlanRecord(record)
	assert.Error(t, err)
}
