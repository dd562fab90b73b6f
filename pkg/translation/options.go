package translation

import (
	"github.com/nerdneilsfield/validator-format-agent/pkg/llm"
	"go.uber.org/zap"
)

// Option 服务配置选项函数
type Option func(*serviceOptions)

// serviceOptions 服务内部选项
type serviceOptions struct {
	llmClient llm.Client
	cache     Cache
	metrics   MetricsCollector
	logger    *zap.Logger
}

// WithLLMClient 设置语言模型客户端。不设置时引擎只走启发式路径。
func WithLLMClient(client llm.Client) Option {
	return func(o *serviceOptions) {
		o.llmClient = client
	}
}

// WithCache 设置翻译结果缓存
func WithCache(cache Cache) Option {
	return func(o *serviceOptions) {
		o.cache = cache
	}
}

// WithMetrics 设置指标收集器
func WithMetrics(collector MetricsCollector) Option {
	return func(o *serviceOptions) {
		o.metrics = collector
	}
}

// WithLogger 设置 logger
func WithLogger(logger *zap.Logger) Option {
	return func(o *serviceOptions) {
		o.logger = logger
	}
}
