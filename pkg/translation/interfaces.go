package translation

import (
	"context"

	"github.com/nerdneilsfield/validator-format-agent/pkg/format"
)

// Service 翻译引擎对外契约。
// 所有操作都返回已填充的结果；唯一会返回的错误是非法格式值（调用方契约违规）。
type Service interface {
	// Translate 在两种格式之间翻译校验器内容
	Translate(ctx context.Context, content string, source, target format.Format) (*Result, error)

	// ToBehavioralScenario 翻译到行为场景格式
	ToBehavioralScenario(ctx context.Context, content string, source format.Format) (*Result, error)

	// ToNaturalLanguage 翻译到自然语言格式
	ToNaturalLanguage(ctx context.Context, content string, source format.Format) (*Result, error)

	// ToExecutableCode 翻译到可执行代码格式
	ToExecutableCode(ctx context.Context, content string, source format.Format) (*Result, error)

	// ToStructuredData 翻译到结构化数据格式
	ToStructuredData(ctx context.Context, content string, source format.Format) (*Result, error)

	// ValidateTranslation 评估译文是否保持原文语义
	ValidateTranslation(ctx context.Context, original, translated string, source, target format.Format) (*SemanticValidation, error)

	// TestRoundTrip 往返翻译并度量关键词保留率
	TestRoundTrip(ctx context.Context, content string, source, target format.Format) (*RoundTripResult, error)

	// GetConfig 获取当前配置
	GetConfig() *Config
}

// Cache 翻译结果缓存接口
type Cache interface {
	// Get 获取缓存条目
	Get(key string) (*CachedResult, bool)

	// Set 写入缓存条目
	Set(key string, value *CachedResult) error

	// Clear 清除所有缓存
	Clear() error

	// Stats 获取缓存统计信息
	Stats() CacheStats
}

// CacheStats 缓存统计信息
type CacheStats struct {
	Hits   int64
	Misses int64
	Size   int64
}

// MetricsCollector 指标收集器接口
type MetricsCollector interface {
	// RecordTranslation 记录一次翻译的指标
	RecordTranslation(metrics *Metrics)

	// GetSummary 获取统计摘要
	GetSummary() *MetricsSummary
}
