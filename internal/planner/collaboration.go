package planner

import "strings"

const (
	collaborationKeywordScore = 0.3
	collaborationThreshold    = 0.7
)

// 协作关键词，每命中一个计 0.3 分，封顶 1.0
var collaborationKeywords = []string{"discussion", "group", "team", "collaborative", "peer"}

var discussionActivities = []string{"structured_debate", "think_pair_share", "socratic_seminar"}
var projectActivities = []string{"group_project", "shared_artifact_build", "peer_review_cycle"}
var generalActivities = []string{"pair_work", "peer_explanation", "collaborative_quiz"}

var discussionRoles = []string{"facilitator", "timekeeper", "recorder", "presenter"}
var projectRoles = []string{"coordinator", "researcher", "builder", "reviewer", "presenter"}
var generalRoles = []string{"partner_a", "partner_b"}

// CollaborationScore 统计目标文本命中的协作关键词数，每个计 0.3 分，封顶 1.0。
func CollaborationScore(objective string) float64 {
	text := strings.ToLower(objective)
	score := 0.0
	for _, kw := range collaborationKeywords {
		if strings.Contains(text, kw) {
			score += collaborationKeywordScore
		}
	}
	if score > 1.0 {
		score = 1.0
	}
	return score
}

// findCollaborationOpportunities 得分 > 0.7 的目标才视为协作机会，
// 按目标文本推导活动、小组规模与角色分配。
func findCollaborationOpportunities(objectives []string) []CollaborationOpportunity {
	out := make([]CollaborationOpportunity, 0)
	for i, objective := range objectives {
		score := CollaborationScore(objective)
		if score <= collaborationThreshold {
			continue
		}

		activities, minSize, maxSize, roles := collaborationShape(objective)
		out = append(out, CollaborationOpportunity{
			CheckpointIndex:     i,
			Objective:           objective,
			Score:               score,
			SuggestedActivities: activities,
			GroupSizeMin:        minSize,
			GroupSizeMax:        maxSize,
			Roles:               roles,
		})
	}
	return out
}

// collaborationShape 小组形态：discussion -> 3..6 人；project -> 4..8 人；其余 2..4 人。
func collaborationShape(objective string) ([]string, int, int, []string) {
	text := strings.ToLower(objective)
	switch {
	case strings.Contains(text, "discussion"):
		return discussionActivities, 3, 6, discussionRoles
	case strings.Contains(text, "project"):
		return projectActivities, 4, 8, projectRoles
	default:
		return generalActivities, 2, 4, generalRoles
	}
}
