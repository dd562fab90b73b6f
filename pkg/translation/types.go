package translation

import (
	"time"

	"github.com/nerdneilsfield/validator-format-agent/pkg/format"
)

// Result 翻译结果
type Result struct {
	// Content 翻译后的内容
	Content string `json:"content"`

	// SourceFormat 源格式
	SourceFormat format.Format `json:"source_format"`

	// TargetFormat 目标格式
	TargetFormat format.Format `json:"target_format"`

	// Confidence 置信度，始终在 [0,1] 区间内
	Confidence float64 `json:"confidence"`

	// Warnings 警告列表
	Warnings []string `json:"warnings"`

	// UsedLanguageModel 是否使用了语言模型
	UsedLanguageModel bool `json:"used_language_model"`
}

// SemanticValidation 语义校验结果
type SemanticValidation struct {
	// IsValid 翻译是否保持语义（等价度达标且无警告）
	IsValid bool `json:"is_valid"`

	// Equivalence 语义等价度，始终在 [0,1] 区间内
	Equivalence float64 `json:"equivalence"`

	// Warnings 警告列表
	Warnings []string `json:"warnings"`

	// Suggestions 改进建议
	Suggestions []string `json:"suggestions"`
}

// RoundTripResult 往返翻译测试结果
type RoundTripResult struct {
	// OriginalContent 原始内容
	OriginalContent string `json:"original_content"`

	// IntermediateContent 中间格式内容
	IntermediateContent string `json:"intermediate_content"`

	// RoundTripContent 往返回来的内容
	RoundTripContent string `json:"round_trip_content"`

	// PreservationScore 关键词保留率，始终在 [0,1] 区间内
	PreservationScore float64 `json:"preservation_score"`

	// Acceptable 保留率是否达标
	Acceptable bool `json:"acceptable"`

	// Differences 丢失/新增关键词的可读描述
	Differences []string `json:"differences"`
}

// Metrics 单次翻译的指标
type Metrics struct {
	ID           string        `json:"id"`
	StartTime    time.Time     `json:"start_time"`
	Duration     time.Duration `json:"duration"`
	SourceFormat format.Format `json:"source_format"`
	TargetFormat format.Format `json:"target_format"`
	InputLength  int           `json:"input_length"`
	OutputLength int           `json:"output_length"`
	UsedLLM      bool          `json:"used_llm"`
	Fallback     bool          `json:"fallback"`
	CacheHit     bool          `json:"cache_hit"`
}

// MetricsSummary 指标摘要
type MetricsSummary struct {
	TotalTranslations int           `json:"total_translations"`
	LLMCount          int           `json:"llm_count"`
	FallbackCount     int           `json:"fallback_count"`
	CacheHitCount     int           `json:"cache_hit_count"`
	TotalDuration     time.Duration `json:"total_duration"`
	AverageDuration   time.Duration `json:"average_duration"`
}
