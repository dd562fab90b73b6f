package translation

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/nerdneilsfield/validator-format-agent/pkg/format"
	"go.uber.org/zap"
)

// service 翻译引擎实现
type service struct {
	config  *Config
	options serviceOptions
	adapter *Adapter
	logger  *zap.Logger
}

// New 创建翻译引擎。LLM 客户端是可选依赖：
// 不设置时所有翻译和校验都走启发式路径。
func New(config *Config, opts ...Option) (Service, error) {
	if config == nil {
		config = DefaultConfig()
	}

	if err := config.Validate(); err != nil {
		return nil, WrapError(err, ErrCodeConfig, "invalid configuration")
	}

	options := serviceOptions{}
	for _, opt := range opts {
		opt(&options)
	}

	logger := options.logger
	if logger == nil {
		logger = zap.NewNop()
	}

	return &service{
		config:  config.Clone(),
		options: options,
		adapter: NewAdapter(options.llmClient, config, logger),
		logger:  logger,
	}, nil
}

// Translate 在两种格式之间翻译校验器内容。
// 适配器的任何失败都在此吸收并回退到启发式转换；
// 只有非法的格式值会作为错误返回。
func (s *service) Translate(ctx context.Context, content string, source, target format.Format) (*Result, error) {
	if !source.Valid() {
		return nil, invalidFormatError(string(source))
	}
	if !target.Valid() {
		return nil, invalidFormatError(string(target))
	}

	startTime := time.Now()
	metrics := &Metrics{
		ID:           uuid.New().String(),
		StartTime:    startTime,
		SourceFormat: source,
		TargetFormat: target,
		InputLength:  len(content),
	}

	// 同格式翻译是恒等操作，不调用适配器
	if source == target {
		result := &Result{
			Content:           content,
			SourceFormat:      source,
			TargetFormat:      target,
			Confidence:        1.0,
			Warnings:          []string{},
			UsedLanguageModel: false,
		}
		s.record(metrics, result, false, false)
		return result, nil
	}

	// 缓存命中直接返回
	key := cacheKey(content, source, target, s.config.Model)
	if s.options.cache != nil {
		if entry, ok := s.options.cache.Get(key); ok && entry.Result != nil {
			s.logger.Debug("translation cache hit",
				zap.String("source", source.String()),
				zap.String("target", target.String()))
			s.record(metrics, entry.Result, entry.Result.UsedLanguageModel, true)
			return entry.Result, nil
		}
	}

	result := s.translateOnce(ctx, content, source, target)

	if s.options.cache != nil {
		entry := &CachedResult{
			Result:   result,
			Metadata: buildFormatMetadata(result.Content, target),
		}
		if err := s.options.cache.Set(key, entry); err != nil {
			s.logger.Warn("failed to cache translation result", zap.Error(err))
		}
	}

	s.record(metrics, result, result.UsedLanguageModel, false)
	return result, nil
}

// translateOnce 两步尝试序列：先适配器，失败即回退启发式。
// 启发式路径保证成功，所以本方法总是返回已填充的结果。
func (s *service) translateOnce(ctx context.Context, content string, source, target format.Format) *Result {
	if s.options.llmClient != nil {
		result, err := s.adapter.Translate(ctx, content, source, target)
		if err == nil {
			result.Confidence = clamp01(result.Confidence)
			if result.Warnings == nil {
				result.Warnings = []string{}
			}
			return result
		}

		s.logger.Warn("language model translation failed, falling back to heuristics",
			zap.String("source", source.String()),
			zap.String("target", target.String()),
			zap.Error(err))
	}

	return ConvertHeuristic(content, source, target)
}

// record 写入指标，收集器未设置时不做任何事
func (s *service) record(metrics *Metrics, result *Result, usedLLM, cacheHit bool) {
	if s.options.metrics == nil {
		return
	}

	metrics.Duration = time.Since(metrics.StartTime)
	metrics.OutputLength = len(result.Content)
	metrics.UsedLLM = usedLLM
	metrics.Fallback = !usedLLM && metrics.SourceFormat != metrics.TargetFormat && !cacheHit
	metrics.CacheHit = cacheHit

	s.options.metrics.RecordTranslation(metrics)
}

// ToBehavioralScenario 翻译到行为场景格式
func (s *service) ToBehavioralScenario(ctx context.Context, content string, source format.Format) (*Result, error) {
	return s.Translate(ctx, content, source, format.BehavioralScenario)
}

// ToNaturalLanguage 翻译到自然语言格式
func (s *service) ToNaturalLanguage(ctx context.Context, content string, source format.Format) (*Result, error) {
	return s.Translate(ctx, content, source, format.NaturalLanguage)
}

// ToExecutableCode 翻译到可执行代码格式
func (s *service) ToExecutableCode(ctx context.Context, content string, source format.Format) (*Result, error) {
	return s.Translate(ctx, content, source, format.ExecutableCode)
}

// ToStructuredData 翻译到结构化数据格式
func (s *service) ToStructuredData(ctx context.Context, content string, source format.Format) (*Result, error) {
	return s.Translate(ctx, content, source, format.StructuredData)
}

// GetConfig 获取当前配置
func (s *service) GetConfig() *Config {
	return s.config.Clone()
}
