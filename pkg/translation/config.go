package translation

import "fmt"

// 固定的默认阈值。可以通过配置覆盖，但默认值是契约的一部分。
const (
	// DefaultEquivalenceThreshold 语义等价度达标线
	DefaultEquivalenceThreshold = 0.7

	// DefaultPreservationThreshold 往返翻译保留率达标线
	DefaultPreservationThreshold = 0.9

	// DefaultTemperature 语言模型温度，取低值以保证翻译可复现
	DefaultTemperature = 0.3

	// DefaultMaxTokens 语言模型输出长度预算
	DefaultMaxTokens = 2000
)

// 长度比警告区间：译文长度与原文长度之比超出该区间时追加警告
const (
	minLengthRatio = 0.3
	maxLengthRatio = 3.0
)

// Config 引擎配置
type Config struct {
	// Model 语言模型名称（仅用于提示词缓存 key 和指标，客户端自带模型配置）
	Model string `mapstructure:"model"`

	// Temperature 语言模型温度
	Temperature float32 `mapstructure:"temperature"`

	// MaxTokens 语言模型最大输出 token 数
	MaxTokens int `mapstructure:"max_tokens"`

	// EquivalenceThreshold 语义等价度达标线
	EquivalenceThreshold float64 `mapstructure:"equivalence_threshold"`

	// PreservationThreshold 往返保留率达标线
	PreservationThreshold float64 `mapstructure:"preservation_threshold"`
}

// DefaultConfig 返回默认配置
func DefaultConfig() *Config {
	return &Config{
		Temperature:           DefaultTemperature,
		MaxTokens:             DefaultMaxTokens,
		EquivalenceThreshold:  DefaultEquivalenceThreshold,
		PreservationThreshold: DefaultPreservationThreshold,
	}
}

// Validate 验证配置
func (c *Config) Validate() error {
	if c.EquivalenceThreshold < 0 || c.EquivalenceThreshold > 1 {
		return fmt.Errorf("%w: equivalence threshold %.2f out of [0,1]", ErrInvalidConfig, c.EquivalenceThreshold)
	}
	if c.PreservationThreshold < 0 || c.PreservationThreshold > 1 {
		return fmt.Errorf("%w: preservation threshold %.2f out of [0,1]", ErrInvalidConfig, c.PreservationThreshold)
	}
	if c.Temperature < 0 || c.Temperature > 2 {
		return fmt.Errorf("%w: temperature %.2f out of [0,2]", ErrInvalidConfig, c.Temperature)
	}
	if c.MaxTokens < 0 {
		return fmt.Errorf("%w: max tokens must not be negative", ErrInvalidConfig)
	}
	return nil
}

// Clone 复制配置
func (c *Config) Clone() *Config {
	clone := *c
	return &clone
}

// clamp01 将数值裁剪到 [0,1] 区间
func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
