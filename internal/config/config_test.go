package config

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestApplyHotReloadSwapsPlannerSettings(t *testing.T) {
	cfg := &Config{
		Planner: PlannerConfig{ContextCacheTTL: time.Minute, PlanHistoryLimit: 10},
	}
	newCfg := &Config{
		Planner: PlannerConfig{ContextCacheTTL: 5 * time.Minute, PlanHistoryLimit: 50},
	}

	cfg.ApplyHotReload(newCfg)

	got := cfg.PlannerSettings()
	assert.Equal(t, 5*time.Minute, got.ContextCacheTTL)
	assert.Equal(t, 50, got.PlanHistoryLimit)
}

// 配置监听协程写、请求协程读，访问必须经过加锁的访问器
func TestPlannerSettingsConcurrentReload(t *testing.T) {
	cfg := &Config{
		Planner: PlannerConfig{ContextCacheTTL: time.Minute, PlanHistoryLimit: 10},
	}
	newCfg := &Config{
		Planner: PlannerConfig{ContextCacheTTL: 2 * time.Minute, PlanHistoryLimit: 20},
	}

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 200; j++ {
				settings := cfg.PlannerSettings()
				assert.NotZero(t, settings.PlanHistoryLimit)
			}
		}()
	}
	for i := 0; i < 4; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 50; j++ {
				cfg.ApplyHotReload(newCfg)
			}
		}()
	}
	wg.Wait()

	got := cfg.PlannerSettings()
	assert.Equal(t, 2*time.Minute, got.ContextCacheTTL)
	assert.Equal(t, 20, got.PlanHistoryLimit)
}
