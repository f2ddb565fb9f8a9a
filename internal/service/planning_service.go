package service

import (
	"context"
	"crypto/md5"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"edupath_backend/internal/config"
	"edupath_backend/internal/model"
	"edupath_backend/internal/planner"
	"edupath_backend/internal/repository"
	"edupath_backend/internal/util"
	"edupath_backend/pkg/logger"
	"edupath_backend/pkg/monitoring"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// PlanningService 组装规划引擎的输入并持久化输出。
// 引擎本身无状态、无 I/O，所有取数和缓存都在这一层。
type PlanningService struct {
	ProfileRepo   *repository.ProfileRepository
	ObjectiveRepo *repository.ObjectiveRepository
	ProgressRepo  *repository.ProgressRepository
	PlanRepo      *repository.PlanRepository
	ResourceRepo  *repository.ResourceRepository
	Redis         *redis.Client
	Cfg           *config.Config
}

func NewPlanningService(
	profileRepo *repository.ProfileRepository,
	objectiveRepo *repository.ObjectiveRepository,
	progressRepo *repository.ProgressRepository,
	planRepo *repository.PlanRepository,
	resourceRepo *repository.ResourceRepository,
	rdb *redis.Client,
	cfg *config.Config,
) *PlanningService {
	return &PlanningService{
		ProfileRepo:   profileRepo,
		ObjectiveRepo: objectiveRepo,
		ProgressRepo:  progressRepo,
		PlanRepo:      planRepo,
		ResourceRepo:  resourceRepo,
		Redis:         rdb,
		Cfg:           cfg,
	}
}

// PlanResult 一次规划的完整返回
type PlanResult struct {
	PlanID        string                     `json:"planId"`
	Subject       string                     `json:"subject"`
	OptimalPacing float64                    `json:"optimalPacing"`
	Context       planner.EducationalContext `json:"context"`
	Path          planner.LearningPath       `json:"path"`
}

// AnalyzeContext 分析学习者的教育场景。结果按 (用户, 信号) 缓存，
// 画像更新后由 InvalidateContext 清除。
func (s *PlanningService) AnalyzeContext(ctx context.Context, userID uint, signals map[string]string) (*planner.EducationalContext, error) {
	profileModel, err := s.ProfileRepo.FindByUserID(userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, util.ErrProfileNotFound
		}
		return nil, err
	}

	cacheKey := s.contextCacheKey(userID, signals)
	if val, err := s.Redis.Get(ctx, cacheKey).Result(); err == nil {
		var cached planner.EducationalContext
		if err := json.Unmarshal([]byte(val), &cached); err == nil {
			return &cached, nil
		}
	} else if err != redis.Nil {
		logger.Log.Warn("context cache read failed", zap.Error(err))
	}

	profile := ToPlannerProfile(profileModel)
	eduCtx := planner.AnalyzeContext(signals, profile)

	if payload, err := json.Marshal(eduCtx); err == nil {
		if err := s.Redis.Set(ctx, cacheKey, payload, s.Cfg.PlannerSettings().ContextCacheTTL).Err(); err != nil {
			logger.Log.Warn("context cache write failed", zap.Error(err))
		}
	}

	return &eduCtx, nil
}

// InvalidateContext 清除用户的全部场景缓存，画像变更后调用
func (s *PlanningService) InvalidateContext(ctx context.Context, userID uint) {
	pattern := fmt.Sprintf("planner:context:%d:*", userID)
	iter := s.Redis.Scan(ctx, 0, pattern, 0).Iterator()
	for iter.Next(ctx) {
		s.Redis.Del(ctx, iter.Val())
	}
	if err := iter.Err(); err != nil {
		logger.Log.Warn("context cache invalidation failed", zap.Error(err))
	}
}

// GeneratePlan 为用户在某学科上生成一条新的学习路径并持久化快照。
// 路径整体重算，旧快照保留为历史。
func (s *PlanningService) GeneratePlan(ctx context.Context, userID uint, subject string, signals map[string]string) (*PlanResult, error) {
	profileModel, err := s.ProfileRepo.FindByUserID(userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, util.ErrProfileNotFound
		}
		return nil, err
	}
	profile := ToPlannerProfile(profileModel)

	objectives, err := s.ObjectiveRepo.FindBySubject(subject)
	if err != nil {
		return nil, err
	}

	descriptions := make([]string, 0, len(objectives))
	byID := make(map[uint]string, len(objectives))
	for _, o := range objectives {
		descriptions = append(descriptions, o.Description)
		byID[o.ID] = o.Description
	}

	progress, err := s.loadProgress(userID, byID)
	if err != nil {
		return nil, err
	}

	kinds, err := s.ResourceRepo.DistinctKinds(subject)
	if err != nil {
		return nil, err
	}

	eduCtx, err := s.AnalyzeContext(ctx, userID, signals)
	if err != nil {
		return nil, err
	}

	pacing := planner.ComputeOptimalPacing(profile)

	start := time.Now()
	path, err := planner.OptimizePath(planner.PathInput{
		PathID:             model.GenerateUUID(),
		Profile:            profile,
		Objectives:         descriptions,
		Progress:           progress,
		AvailableResources: kinds,
		OptimalPacing:      pacing,
	})
	monitoring.PlanDuration.Observe(time.Since(start).Seconds())

	if err != nil {
		if errors.Is(err, planner.ErrInvalidInput) {
			monitoring.PlanRejections.Inc()
		}
		return nil, err
	}
	monitoring.PlansGenerated.WithLabelValues(eduCtx.PrimaryContext).Inc()

	record, err := s.persistPlan(userID, subject, len(descriptions), pacing, eduCtx, path)
	if err != nil {
		return nil, err
	}

	logger.Log.Info("learning plan generated",
		zap.Uint("userId", userID),
		zap.String("subject", subject),
		zap.String("planId", record.ID),
		zap.Int("checkpoints", len(path.Checkpoints)),
	)

	return &PlanResult{
		PlanID:        record.ID,
		Subject:       subject,
		OptimalPacing: pacing,
		Context:       *eduCtx,
		Path:          *path,
	}, nil
}

// GetPlan 读取一份历史规划快照。快照仅本人和管理员可见，
// 他人的规划一律按不存在处理，不暴露快照是否存在。
func (s *PlanningService) GetPlan(planID string, requester *util.Claims) (*PlanResult, error) {
	record, err := s.PlanRepo.FindByID(planID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, util.ErrPlanNotFound
		}
		return nil, err
	}
	if !canViewPlan(requester, record.UserID) {
		return nil, util.ErrPlanNotFound
	}
	return decodePlanRecord(record)
}

func canViewPlan(requester *util.Claims, ownerID uint) bool {
	if requester == nil {
		return false
	}
	return requester.UserID == ownerID || requester.Role == model.Admin
}

// History 返回用户最近的规划快照，条数由配置限制
func (s *PlanningService) History(userID uint) ([]model.LearningPlanRecord, error) {
	return s.PlanRepo.FindByUser(userID, s.Cfg.PlannerSettings().PlanHistoryLimit)
}

func (s *PlanningService) contextCacheKey(userID uint, signals map[string]string) string {
	// map 的 JSON 序列化按键排序，相同信号必得相同 key
	payload, _ := json.Marshal(signals)
	return fmt.Sprintf("planner:context:%d:%x", userID, md5.Sum(payload))
}

// loadProgress 将进度记录转换为引擎的进度快照，已完成目标以描述文本标识
func (s *PlanningService) loadProgress(userID uint, objectivesByID map[uint]string) (*planner.Progress, error) {
	records, err := s.ProgressRepo.FindByUser(userID)
	if err != nil {
		return nil, err
	}

	progress := &planner.Progress{}
	for _, r := range records {
		desc, ok := objectivesByID[r.ObjectiveID]
		if !ok {
			continue
		}
		if r.Completed {
			progress.CompletedObjectives = append(progress.CompletedObjectives, desc)
		}
		progress.TimeSpentMinutes += r.TimeSpentMinutes
	}
	return progress, nil
}

func (s *PlanningService) persistPlan(userID uint, subject string, objectiveCount int, pacing float64, eduCtx *planner.EducationalContext, path *planner.LearningPath) (*model.LearningPlanRecord, error) {
	ctxJSON, err := json.Marshal(eduCtx)
	if err != nil {
		return nil, err
	}
	pathJSON, err := json.Marshal(path)
	if err != nil {
		return nil, err
	}

	record := &model.LearningPlanRecord{
		UserID:         userID,
		Subject:        subject,
		ObjectiveCount: objectiveCount,
		OptimalPacing:  pacing,
		Context:        ctxJSON,
		Path:           pathJSON,
	}
	record.ID = path.PathID

	if err := s.PlanRepo.Create(record); err != nil {
		return nil, err
	}
	return record, nil
}

func decodePlanRecord(record *model.LearningPlanRecord) (*PlanResult, error) {
	result := &PlanResult{
		PlanID:        record.ID,
		Subject:       record.Subject,
		OptimalPacing: record.OptimalPacing,
	}
	if err := json.Unmarshal(record.Context, &result.Context); err != nil {
		return nil, fmt.Errorf("decode plan context: %w", err)
	}
	if err := json.Unmarshal(record.Path, &result.Path); err != nil {
		return nil, fmt.Errorf("decode plan path: %w", err)
	}
	return result, nil
}
