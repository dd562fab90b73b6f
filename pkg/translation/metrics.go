package translation

import (
	"sync"
	"time"
)

// MemoryMetricsCollector 内存指标收集器
type MemoryMetricsCollector struct {
	mu      sync.Mutex
	records []*Metrics
}

// 确保 MemoryMetricsCollector 实现 MetricsCollector 接口
var _ MetricsCollector = (*MemoryMetricsCollector)(nil)

// NewMemoryMetricsCollector 创建内存指标收集器
func NewMemoryMetricsCollector() *MemoryMetricsCollector {
	return &MemoryMetricsCollector{}
}

// RecordTranslation 记录一次翻译的指标
func (c *MemoryMetricsCollector) RecordTranslation(metrics *Metrics) {
	if metrics == nil {
		return
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	c.records = append(c.records, metrics)
}

// GetSummary 获取统计摘要
func (c *MemoryMetricsCollector) GetSummary() *MetricsSummary {
	c.mu.Lock()
	defer c.mu.Unlock()

	summary := &MetricsSummary{
		TotalTranslations: len(c.records),
	}

	var total time.Duration
	for _, m := range c.records {
		total += m.Duration
		if m.UsedLLM {
			summary.LLMCount++
		}
		if m.Fallback {
			summary.FallbackCount++
		}
		if m.CacheHit {
			summary.CacheHitCount++
		}
	}

	summary.TotalDuration = total
	if len(c.records) > 0 {
		summary.AverageDuration = total / time.Duration(len(c.records))
	}

	return summary
}
